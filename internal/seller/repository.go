package seller

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"floramart-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

var (
	ErrSellerNotFound = errors.New("seller not found")
	ErrAlreadySeller  = errors.New("user is already registered as a seller")
)

type Repository interface {
	GetSellers(ctx context.Context, limit, page *int32) ([]*Seller, error)
	GetByUserID(ctx context.Context, userID uint) (*Seller, error)
	AddSeller(ctx context.Context, input NewSellerInput) (*Seller, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetSellers(ctx context.Context, limit, page *int32) ([]*Seller, error) {
	finalLimit := int32(20)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}
	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.user_id, s.store_name, s.phone, s.address, s.created_at
		FROM sellers s
		ORDER BY s.store_name ASC
		LIMIT $1 OFFSET $2
	`, finalLimit, finalOffset)
	if err != nil {
		log.Error("DB query failed GetSellers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sellers := make([]*Seller, 0, finalLimit)
	for rows.Next() {
		var s Seller
		if err := rows.Scan(&s.ID, &s.UserID, &s.StoreName, &s.Phone, &s.Address, &s.CreatedAt); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		sellers = append(sellers, &s)
	}
	return sellers, rows.Err()
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) (*Seller, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT s.id, s.user_id, s.store_name, s.phone, s.address, s.created_at
		FROM sellers s WHERE s.user_id = $1
	`, userID)

	var s Seller
	err := row.Scan(&s.ID, &s.UserID, &s.StoreName, &s.Phone, &s.Address, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSellerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) AddSeller(ctx context.Context, input NewSellerInput) (*Seller, error) {
	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", input.UserID),
		zap.String("store_name", input.StoreName),
	)

	if input.StoreName == "" {
		return nil, errors.New("store name cannot be empty")
	}

	var s Seller
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sellers (user_id, store_name, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, store_name, phone, address, created_at
	`, input.UserID, input.StoreName, input.Phone, input.Address).Scan(
		&s.ID, &s.UserID, &s.StoreName, &s.Phone, &s.Address, &s.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrAlreadySeller
		}
		log.Error("AddSeller DB query failed", zap.Error(err))
		return nil, fmt.Errorf("add seller failed: %w", err)
	}

	log.Info("seller registered", zap.Uint("seller_id", s.ID))
	return &s, nil
}
