package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"floramart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CreateFromCart(ctx context.Context, userID uint, reference string) (*Order, error)
	GetByReference(ctx context.Context, reference string) (*Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	GetOrders(ctx context.Context, userID uint, limit, page int32) ([]*Order, error)

	// CommitPaymentTransition performs the atomic compare-and-set on the
	// payment status. It returns false when the row was not in fromStatus
	// anymore, which means a concurrent callback won the race.
	CommitPaymentTransition(ctx context.Context, reference string, fromStatus, toStatus PaymentStatus) (bool, error)

	// RecordGatewayTransaction stores the gateway transaction id the first
	// time it is seen; later callbacks never overwrite it.
	RecordGatewayTransaction(ctx context.Context, reference, transactionNo string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateFromCart snapshots the user's cart into a PENDING order inside one
// transaction. The cart itself is left intact; it is cleared only when the
// payment callback lands the order in PAID.
func (r *repository) CreateFromCart(ctx context.Context, userID uint, reference string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", userID),
		zap.String("reference", reference),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT ci.flower_id, ci.quantity, f.price
		FROM cart_items ci
		JOIN flowers f ON f.id = ci.flower_id
		WHERE ci.user_id = $1
	`, userID)
	if err != nil {
		log.Error("failed to read cart for checkout", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	var total int64
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.FlowerID, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		total += it.Price * int64(it.Quantity)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	o := &Order{
		UserID:        userID,
		Reference:     reference,
		Amount:        total,
		PaymentStatus: PaymentPending,
		Items:         items,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, reference, amount, payment_status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, o.UserID, o.Reference, o.Amount, string(o.PaymentStatus)).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, flower_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, o.ID, o.Items[i].FlowerID, o.Items[i].Quantity, o.Items[i].Price)
		if err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	log.Info("order created from cart",
		zap.Uint("order_id", o.ID),
		zap.Int64("amount", o.Amount),
		zap.Int("item_count", len(o.Items)),
	)
	return o, nil
}

func (r *repository) GetByReference(ctx context.Context, reference string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, reference, amount, payment_status, transaction_no, paid_at, created_at, updated_at
		FROM orders WHERE reference = $1
	`, reference)

	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Reference, &o.Amount, &o.PaymentStatus,
		&o.TransactionNo, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, reference, amount, payment_status, transaction_no, paid_at, created_at, updated_at
		FROM orders WHERE id = $1
	`, orderID)

	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Reference, &o.Amount, &o.PaymentStatus,
		&o.TransactionNo, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, flower_id, quantity, price
		FROM order_items WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.FlowerID, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return &o, rows.Err()
}

func (r *repository) GetOrders(ctx context.Context, userID uint, limit, page int32) ([]*Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, reference, amount, payment_status, transaction_no, paid_at, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Reference, &o.Amount, &o.PaymentStatus,
			&o.TransactionNo, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *repository) CommitPaymentTransition(ctx context.Context, reference string, fromStatus, toStatus PaymentStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET payment_status = $1,
		    paid_at = CASE WHEN $1 = 'PAID' THEN now() ELSE paid_at END,
		    updated_at = now()
		WHERE reference = $2 AND payment_status = $3
	`, string(toStatus), reference, string(fromStatus))
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *repository) RecordGatewayTransaction(ctx context.Context, reference, transactionNo string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET transaction_no = $1, updated_at = now()
		WHERE reference = $2 AND transaction_no = ''
	`, transactionNo, reference)
	return err
}
