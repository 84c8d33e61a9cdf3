package order

import (
	"context"
	"database/sql"
	"errors"

	"craftlink-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*Order, error)
	Update(ctx context.Context, o *Order) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
	AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderSelect = `
	SELECT
		o.id, o.order_type, o.created_by, o.user_id, o.supplier_id,
		o.artisan_id, o.driver_id, o.product_id,
		o.quantity, o.total_price, o.payment_method, o.payment_timing,
		o.payment_code, o.delivery_address, o.payment_status, o.order_status,
		o.notes,
		o.approved_at, o.rejected_at, o.shipped_at,
		o.delivered_at, o.received_at, o.completed_at,
		o.created_at, o.updated_at,
		u.full_name, p.name, d.full_name
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id
	LEFT JOIN products p ON p.id = o.product_id
	LEFT JOIN users d ON d.id = o.driver_id
`

func scanOrder(row interface{ Scan(dest ...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.OrderType, &o.CreatedBy, &o.UserID, &o.SupplierID,
		&o.ArtisanID, &o.DriverID, &o.ProductID,
		&o.Quantity, &o.TotalPrice, &o.PaymentMethod, &o.PaymentTiming,
		&o.PaymentCode, &o.DeliveryAddress, &o.PaymentStatus, &o.OrderStatus,
		&o.Notes,
		&o.ApprovedAt, &o.RejectedAt, &o.ShippedAt,
		&o.DeliveredAt, &o.ReceivedAt, &o.CompletedAt,
		&o.CreatedAt, &o.UpdatedAt,
		&o.CustomerName, &o.ProductName, &o.DriverName,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("order_id", o.ID.String()),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, order_type, created_by, user_id, supplier_id, artisan_id,
			product_id, quantity, total_price, payment_method, payment_timing,
			payment_code, delivery_address, payment_status, order_status, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING created_at, updated_at
	`,
		o.ID, o.OrderType, o.CreatedBy, o.UserID, o.SupplierID, o.ArtisanID,
		o.ProductID, o.Quantity, o.TotalPrice, o.PaymentMethod, o.PaymentTiming,
		o.PaymentCode, o.DeliveryAddress, o.PaymentStatus, o.OrderStatus, o.Notes,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := r.db.QueryRowContext(ctx, orderSelect+` WHERE o.id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) List(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx, orderSelect+` ORDER BY o.created_at DESC`)
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Order, error) {
	return r.queryOrders(ctx,
		orderSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
}

func (r *repository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*Order, error) {
	return r.queryOrders(ctx,
		orderSelect+` WHERE o.driver_id = $1 ORDER BY o.created_at DESC`, driverID)
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Update persists every transition-mutable field in one statement, so each
// lifecycle step stays a single-row atomic write.
func (r *repository) Update(ctx context.Context, o *Order) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET
			driver_id = $1,
			total_price = $2,
			payment_method = $3,
			payment_code = $4,
			payment_status = $5,
			order_status = $6,
			notes = $7,
			approved_at = $8,
			rejected_at = $9,
			shipped_at = $10,
			delivered_at = $11,
			received_at = $12,
			completed_at = $13,
			updated_at = NOW()
		WHERE id = $14
	`,
		o.DriverID, o.TotalPrice, o.PaymentMethod, o.PaymentCode,
		o.PaymentStatus, o.OrderStatus, o.Notes,
		o.ApprovedAt, o.RejectedAt, o.ShippedAt,
		o.DeliveredAt, o.ReceivedAt, o.CompletedAt,
		o.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET payment_status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET driver_id = $1, updated_at = NOW() WHERE id = $2
	`, driverID, orderID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
