package cart

import (
	"context"
	"database/sql"
	"errors"

	"floramart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartItemByUserAndFlower(ctx context.Context, userID, flowerID uint) (*CartItem, error)
	GetCartItems(ctx context.Context, userID uint) ([]*CartItem, error)
	CreateCartItem(ctx context.Context, params AddToCartParams) (*CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, id uint, quantity int) (*CartItem, error)
	RemoveFromCart(ctx context.Context, userID, flowerID uint) error
	ClearCart(ctx context.Context, userID uint) error

	// ClearForOrder empties the cart of the user who owns the referenced
	// order. Idempotent: clearing an already-empty cart succeeds, so
	// replayed paid callbacks are harmless.
	ClearForOrder(ctx context.Context, reference string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCartItemByUserAndFlower(ctx context.Context, userID, flowerID uint) (*CartItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, flower_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1 AND flower_id = $2
	`, userID, flowerID)

	var item CartItem
	err := row.Scan(&item.ID, &item.UserID, &item.FlowerID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetCartItems(ctx context.Context, userID uint) ([]*CartItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, flower_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*CartItem
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.FlowerID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *repository) CreateCartItem(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (user_id, flower_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, flower_id, quantity, created_at, updated_at
	`, params.UserID, params.FlowerID, params.Quantity)

	var item CartItem
	if err := row.Scan(&item.ID, &item.UserID, &item.FlowerID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) UpdateCartItemQuantity(ctx context.Context, id uint, quantity int) (*CartItem, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, user_id, flower_id, quantity, created_at, updated_at
	`, quantity, id)

	var item CartItem
	err := row.Scan(&item.ID, &item.UserID, &item.FlowerID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) RemoveFromCart(ctx context.Context, userID, flowerID uint) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE user_id = $1 AND flower_id = $2
	`, userID, flowerID)
	return err
}

func (r *repository) ClearCart(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE user_id = $1
	`, userID)
	return err
}

func (r *repository) ClearForOrder(ctx context.Context, reference string) error {
	log := logger.FromCtx(ctx).With(zap.String("reference", reference))

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = (SELECT user_id FROM orders WHERE reference = $1)
	`, reference)
	if err != nil {
		log.Error("failed to clear cart for order", zap.Error(err))
		return err
	}

	cleared, _ := res.RowsAffected()
	log.Info("cart cleared for paid order", zap.Int64("items_removed", cleared))
	return nil
}
