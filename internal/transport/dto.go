package transport

import (
	"craftlink-be/internal/order"

	"github.com/google/uuid"
)

type createOrderRequest struct {
	OrderType       string     `json:"orderType"`
	UserID          *uuid.UUID `json:"userId"`
	SupplierID      *uuid.UUID `json:"supplierId"`
	ArtisanID       *uuid.UUID `json:"artisanId"`
	ProductID       uuid.UUID  `json:"productId"`
	Quantity        int        `json:"quantity"`
	TotalPrice      *float64   `json:"totalPrice"`
	PaymentMethod   string     `json:"paymentMethod"`
	PaymentTiming   string     `json:"paymentTiming"`
	PaymentCode     *string    `json:"paymentCode"`
	DeliveryAddress string     `json:"deliveryAddress"`
}

func (r createOrderRequest) toInput() order.CreateOrderInput {
	return order.CreateOrderInput{
		OrderType:       order.OrderType(r.OrderType),
		UserID:          r.UserID,
		SupplierID:      r.SupplierID,
		ArtisanID:       r.ArtisanID,
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		TotalPrice:      r.TotalPrice,
		PaymentMethod:   r.PaymentMethod,
		PaymentTiming:   order.PaymentTiming(r.PaymentTiming),
		PaymentCode:     r.PaymentCode,
		DeliveryAddress: r.DeliveryAddress,
	}
}

type updateStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

type updatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type assignDriverRequest struct {
	DriverID uuid.UUID `json:"driverId" binding:"required"`
}

type supplierPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentStatus string  `json:"paymentStatus"`
	Notes         string  `json:"notes"`
}

type financeRejectRequest struct {
	Reason string `json:"reason"`
}

type financePaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Notes         string  `json:"notes"`
}

type sendNotificationRequest struct {
	UserID   uuid.UUID `json:"userId" binding:"required"`
	Title    string    `json:"title"`
	Message  string    `json:"message" binding:"required"`
	Category string    `json:"category"`
}

type updateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
