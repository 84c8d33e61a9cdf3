package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderType string

const (
	TypeCustomer  OrderType = "customer"
	TypeInventory OrderType = "inventory"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusApproved   OrderStatus = "approved"
	StatusRejected   OrderStatus = "rejected"
	StatusCancelled  OrderStatus = "cancelled"
	StatusCompleted  OrderStatus = "completed"
	StatusDelivered  OrderStatus = "delivered"
	StatusReceived   OrderStatus = "received"
	StatusShipped    OrderStatus = "shipped"
	StatusInProgress OrderStatus = "in_progress"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusApproved, StatusRejected,
		StatusCancelled, StatusCompleted, StatusDelivered, StatusReceived,
		StatusShipped, StatusInProgress:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
	PaymentReceived PaymentStatus = "received"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentApproved, PaymentRejected, PaymentReceived:
		return true
	}
	return false
}

type PaymentTiming string

const (
	PayBeforeDelivery PaymentTiming = "beforeDelivery"
	PayAfterDelivery  PaymentTiming = "afterDelivery"
)

type Order struct {
	ID        uuid.UUID `json:"id"`
	OrderType OrderType `json:"orderType"`

	CreatedBy  uuid.UUID  `json:"createdBy"`
	UserID     *uuid.UUID `json:"userId,omitempty"`
	SupplierID *uuid.UUID `json:"supplierId,omitempty"`
	ArtisanID  *uuid.UUID `json:"artisanId,omitempty"`
	DriverID   *uuid.UUID `json:"driverId,omitempty"`
	ProductID  uuid.UUID  `json:"productId"`

	Quantity        int           `json:"quantity"`
	TotalPrice      float64       `json:"totalPrice"`
	PaymentMethod   string        `json:"paymentMethod"`
	PaymentTiming   PaymentTiming `json:"paymentTiming"`
	PaymentCode     *string       `json:"paymentCode,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress"`

	PaymentStatus PaymentStatus `json:"paymentStatus"`
	OrderStatus   OrderStatus   `json:"orderStatus"`
	Notes         *string       `json:"notes,omitempty"`

	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`
	ShippedAt   *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	ReceivedAt  *time.Time `json:"receivedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Display enrichment, filled by joins; never written back.
	CustomerName *string `json:"customerName,omitempty"`
	ProductName  *string `json:"productName,omitempty"`
	DriverName   *string `json:"driverName,omitempty"`
}

type CreateOrderInput struct {
	OrderType       OrderType
	UserID          *uuid.UUID
	SupplierID      *uuid.UUID
	ArtisanID       *uuid.UUID
	ProductID       uuid.UUID
	Quantity        int
	TotalPrice      *float64
	PaymentMethod   string
	PaymentTiming   PaymentTiming
	PaymentCode     *string
	DeliveryAddress string
}

// stampLifecycle records the timestamp for a status the first time it is
// reached. Re-entering a status never overwrites the original stamp.
func (o *Order) stampLifecycle(status OrderStatus, now time.Time) {
	set := func(t **time.Time) {
		if *t == nil {
			*t = &now
		}
	}

	switch status {
	case StatusApproved:
		set(&o.ApprovedAt)
	case StatusRejected:
		set(&o.RejectedAt)
	case StatusShipped:
		set(&o.ShippedAt)
	case StatusDelivered:
		set(&o.DeliveredAt)
	case StatusReceived:
		set(&o.ReceivedAt)
	case StatusCompleted:
		set(&o.CompletedAt)
	}
}
