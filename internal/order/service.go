package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"craftlink-be/internal/events"
	"craftlink-be/internal/logger"
	"craftlink-be/internal/user"
	"craftlink-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Directory is the slice of the user service the order workflow needs:
// role lookup by id.
type Directory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*Order, error)
	ListDriverOrders(ctx context.Context) ([]*Order, error)

	TransitionStatus(ctx context.Context, orderID uuid.UUID, newStatus OrderStatus) (*Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status PaymentStatus) (*Order, error)
	AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) (*Order, error)
	MarkDelivered(ctx context.Context, orderID uuid.UUID) (*Order, error)
	SubmitSupplierPayment(ctx context.Context, orderID uuid.UUID, amount float64, status PaymentStatus, notes string) (*Order, error)

	FinanceApprove(ctx context.Context, orderID uuid.UUID) (*Order, error)
	FinanceReject(ctx context.Context, orderID uuid.UUID, reason string) (*Order, error)
	FinanceProcessPayment(ctx context.Context, orderID uuid.UUID, amount float64, paymentMethod, notes string) (*Order, error)
}

type service struct {
	repo      Repository
	directory Directory
	publisher events.Publisher
}

func NewService(repo Repository, directory Directory, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		directory: directory,
		publisher: publisher,
	}
}

func (s *service) actor(ctx context.Context) (uuid.UUID, string, error) {
	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, "", fmt.Errorf("%w: no authenticated actor", ErrForbidden)
	}
	return id, utils.GetUserRoleFromContext(ctx), nil
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	actorID, _, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.String("order_type", string(input.OrderType)),
	)

	if input.OrderType == "" {
		input.OrderType = TypeCustomer
	}
	if input.ProductID == uuid.Nil {
		return nil, fmt.Errorf("%w: productId is required", ErrValidation)
	}
	if input.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	o := &Order{
		ID:              uuid.New(),
		OrderType:       input.OrderType,
		CreatedBy:       actorID,
		ProductID:       input.ProductID,
		Quantity:        input.Quantity,
		PaymentMethod:   input.PaymentMethod,
		PaymentTiming:   input.PaymentTiming,
		PaymentCode:     input.PaymentCode,
		DeliveryAddress: input.DeliveryAddress,
		PaymentStatus:   PaymentPending,
		OrderStatus:     StatusPending,
	}
	if o.PaymentTiming == "" {
		o.PaymentTiming = PayAfterDelivery
	}
	if o.PaymentTiming != PayBeforeDelivery && o.PaymentTiming != PayAfterDelivery {
		return nil, fmt.Errorf("%w: unknown payment timing %q", ErrValidation, o.PaymentTiming)
	}

	switch input.OrderType {
	case TypeCustomer:
		if input.UserID == nil || input.TotalPrice == nil {
			return nil, fmt.Errorf("%w: missing required order fields", ErrValidation)
		}
		o.UserID = input.UserID
		o.TotalPrice = *input.TotalPrice

	case TypeInventory:
		if input.SupplierID == nil {
			return nil, fmt.Errorf("%w: supplierId is required for inventory orders", ErrValidation)
		}
		o.SupplierID = input.SupplierID
		o.ArtisanID = input.ArtisanID
		if o.ArtisanID == nil {
			o.ArtisanID = &actorID
		}
		if input.TotalPrice != nil {
			o.TotalPrice = *input.TotalPrice
		}

	default:
		return nil, fmt.Errorf("%w: unknown order type %q", ErrValidation, input.OrderType)
	}

	if o.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: totalPrice must not be negative", ErrValidation)
	}

	// Prepaid orders start as paid and wait for finance approval.
	if o.PaymentTiming == PayBeforeDelivery && o.PaymentCode != nil && *o.PaymentCode != "" {
		o.PaymentStatus = PaymentPaid
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	log.Info("order created", zap.String("order_id", o.ID.String()))
	s.publish(ctx, "order.created", o)

	created, err := s.repo.GetByID(ctx, o.ID)
	if err != nil {
		// The insert already succeeded; enrichment is display-only.
		return o, nil
	}
	return created, nil
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*Order, error) {
	actorID, role, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if actorID != userID && role != string(user.RoleAdmin) && role != string(user.RoleFinance) {
		return nil, ErrForbidden
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListDriverOrders(ctx context.Context) ([]*Order, error) {
	actorID, role, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if role != string(user.RoleDriver) {
		return nil, fmt.Errorf("%w: driver only", ErrForbidden)
	}
	return s.repo.ListByDriver(ctx, actorID)
}

// canTransition reports whether the actor may move this order through its
// lifecycle at all; the received-specific gate is applied separately.
func canTransition(o *Order, actorID uuid.UUID, role string) bool {
	switch role {
	case string(user.RoleAdmin), string(user.RoleSupervisor), string(user.RoleFinance):
		return true
	}

	if o.OrderType == TypeInventory {
		return (o.ArtisanID != nil && *o.ArtisanID == actorID) ||
			(o.SupplierID != nil && *o.SupplierID == actorID)
	}
	return (o.UserID != nil && *o.UserID == actorID) ||
		(o.DriverID != nil && *o.DriverID == actorID)
}

func (s *service) TransitionStatus(ctx context.Context, orderID uuid.UUID, newStatus OrderStatus) (*Order, error) {
	actorID, role, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "TransitionStatus"),
		zap.String("order_id", orderID.String()),
		zap.String("new_status", string(newStatus)),
		zap.String("role", role),
	)

	if !ValidOrderStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !canTransition(o, actorID, role) {
		log.Warn("status transition denied")
		return nil, ErrForbidden
	}

	if newStatus == StatusReceived {
		switch o.OrderStatus {
		case StatusDelivered, StatusShipped, StatusCompleted:
		default:
			return nil, fmt.Errorf("%w: cannot mark %s order as received", ErrInvalidTransition, o.OrderStatus)
		}
		// Suppliers may not confirm receipt of their own delivery.
		if o.OrderType == TypeInventory {
			isArtisan := o.ArtisanID != nil && *o.ArtisanID == actorID
			if !isArtisan && role != string(user.RoleAdmin) {
				return nil, fmt.Errorf("%w: only the artisan may confirm receipt", ErrForbidden)
			}
		}
	}

	now := time.Now()
	o.OrderStatus = newStatus
	o.stampLifecycle(newStatus, now)

	if newStatus == StatusReceived &&
		o.PaymentTiming == PayAfterDelivery && o.PaymentStatus == PaymentPending {
		o.PaymentStatus = PaymentPaid
	}

	if err := s.repo.Update(ctx, o); err != nil {
		log.Error("failed to persist status transition", zap.Error(err))
		return nil, err
	}

	log.Info("order status updated")
	s.publish(ctx, "order.status_changed", o)
	return o, nil
}

func (s *service) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status PaymentStatus) (*Order, error) {
	if _, _, err := s.actor(ctx); err != nil {
		return nil, err
	}

	if !ValidPaymentStatus(status) {
		return nil, fmt.Errorf(
			"%w: invalid payment status. Use one of: %s, %s, %s, %s, %s",
			ErrValidation,
			PaymentPending, PaymentPaid, PaymentApproved, PaymentRejected, PaymentReceived,
		)
	}

	if err := s.repo.UpdatePaymentStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, orderID)
}

func (s *service) AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) (*Order, error) {
	if _, _, err := s.actor(ctx); err != nil {
		return nil, err
	}

	driver, err := s.directory.FindByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: invalid driver ID", ErrValidation)
		}
		return nil, err
	}
	if driver.Role != user.RoleDriver {
		return nil, fmt.Errorf("%w: invalid driver ID", ErrValidation)
	}

	if err := s.repo.AssignDriver(ctx, orderID, driverID); err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "order.driver_assigned", o)
	return o, nil
}

func (s *service) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*Order, error) {
	actorID, role, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	isSupplier := o.SupplierID != nil && *o.SupplierID == actorID
	if !isSupplier && role != string(user.RoleAdmin) {
		return nil, fmt.Errorf("%w: supplier or admin only", ErrForbidden)
	}

	o.OrderStatus = StatusDelivered
	o.stampLifecycle(StatusDelivered, time.Now())

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	s.publish(ctx, "order.delivered", o)
	return o, nil
}

func (s *service) SubmitSupplierPayment(ctx context.Context, orderID uuid.UUID, amount float64, status PaymentStatus, notes string) (*Order, error) {
	actorID, role, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	isSupplier := o.SupplierID != nil && *o.SupplierID == actorID
	if !isSupplier && role != string(user.RoleAdmin) {
		return nil, fmt.Errorf("%w: supplier or admin only", ErrForbidden)
	}

	switch o.OrderStatus {
	case StatusDelivered, StatusReceived, StatusCompleted:
	default:
		return nil, fmt.Errorf("%w: payment can only be submitted after delivery", ErrInvalidTransition)
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if status == "" {
		status = PaymentPending
	}
	if !ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}

	o.TotalPrice = amount
	o.PaymentStatus = status
	if notes != "" {
		o.Notes = &notes
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	s.publish(ctx, "order.supplier_payment_submitted", o)
	return o, nil
}

// financeOrder loads an order for a finance mutation and applies the shared
// gates: finance role, inventory order type.
func (s *service) financeOrder(ctx context.Context, orderID uuid.UUID) (*Order, error) {
	_, role, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if role != string(user.RoleFinance) {
		return nil, fmt.Errorf("%w: finance only", ErrForbidden)
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.OrderType != TypeInventory {
		return nil, fmt.Errorf("%w: finance actions apply to inventory orders", ErrInvalidOperation)
	}
	return o, nil
}

func (s *service) FinanceApprove(ctx context.Context, orderID uuid.UUID) (*Order, error) {
	o, err := s.financeOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o.OrderStatus = StatusApproved
	o.PaymentStatus = PaymentApproved
	o.stampLifecycle(StatusApproved, time.Now())

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("inventory order approved by finance",
		zap.String("order_id", o.ID.String()))
	s.publish(ctx, "order.finance_approved", o)
	return o, nil
}

func (s *service) FinanceReject(ctx context.Context, orderID uuid.UUID, reason string) (*Order, error) {
	o, err := s.financeOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = "Rejected by finance"
	}
	o.OrderStatus = StatusRejected
	o.PaymentStatus = PaymentRejected
	o.Notes = &reason
	o.stampLifecycle(StatusRejected, time.Now())

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	s.publish(ctx, "order.finance_rejected", o)
	return o, nil
}

func (s *service) FinanceProcessPayment(ctx context.Context, orderID uuid.UUID, amount float64, paymentMethod, notes string) (*Order, error) {
	o, err := s.financeOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o.PaymentStatus = PaymentPaid
	o.OrderStatus = StatusCompleted
	o.stampLifecycle(StatusCompleted, time.Now())
	if amount > 0 {
		o.TotalPrice = amount
	}
	if paymentMethod != "" {
		o.PaymentMethod = paymentMethod
	}
	if notes != "" {
		o.Notes = &notes
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("inventory order payment processed",
		zap.String("order_id", o.ID.String()),
		zap.Float64("amount", amount))
	s.publish(ctx, "order.payment_processed", o)
	return o, nil
}

func (s *service) publish(ctx context.Context, routingKey string, o *Order) {
	if s.publisher == nil {
		return
	}
	evt := map[string]any{
		"orderId":       o.ID,
		"orderType":     o.OrderType,
		"orderStatus":   o.OrderStatus,
		"paymentStatus": o.PaymentStatus,
		"totalPrice":    o.TotalPrice,
	}
	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		logger.FromCtx(ctx).Warn("failed to publish order event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}
