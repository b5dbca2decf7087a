package flower

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"floramart-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Flower, error)
	GetList(ctx context.Context, opts ListOptions) ([]*Flower, error)
	Create(ctx context.Context, input NewFlowerInput) (*Flower, error)
	UpdateStock(ctx context.Context, id uint, delta int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Flower, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, stock, image_url, category_id, seller_id, created_at, updated_at
		FROM flowers WHERE id = $1
	`, id)

	var f Flower
	err := row.Scan(
		&f.ID, &f.Name, &f.Description, &f.Price, &f.Stock,
		&f.ImageURL, &f.CategoryID, &f.SellerID, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) GetList(ctx context.Context, opts ListOptions) ([]*Flower, error) {
	// ---------- DEFAULTS ----------
	finalLimit := int32(20)
	finalPage := int32(1)

	if opts.Limit != nil && *opts.Limit > 0 {
		finalLimit = *opts.Limit
	}
	if opts.Page != nil && *opts.Page > 0 {
		finalPage = *opts.Page
	}
	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)

	// ---------- BASE QUERY ----------
	query := `
		SELECT f.id, f.name, f.description, f.price, f.stock, f.image_url, f.category_id, f.seller_id, f.created_at, f.updated_at
		FROM flowers f
	`

	where := []string{}
	args := []interface{}{}

	// ---------- FILTERS ----------
	if opts.Filter != nil && *opts.Filter != "" {
		where = append(where, fmt.Sprintf("f.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*opts.Filter+"%")
	}
	if opts.CategoryID != nil {
		where = append(where, fmt.Sprintf("f.category_id = $%d", len(args)+1))
		args = append(args, *opts.CategoryID)
	}
	if opts.SellerID != nil {
		where = append(where, fmt.Sprintf("f.seller_id = $%d", len(args)+1))
		args = append(args, *opts.SellerID)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY f.name ASC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, finalOffset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetList", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	flowers := make([]*Flower, 0, finalLimit)
	for rows.Next() {
		var f Flower
		if err := rows.Scan(
			&f.ID, &f.Name, &f.Description, &f.Price, &f.Stock,
			&f.ImageURL, &f.CategoryID, &f.SellerID, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		flowers = append(flowers, &f)
	}
	return flowers, rows.Err()
}

func (r *repository) Create(ctx context.Context, input NewFlowerInput) (*Flower, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("flower_name", input.Name),
		zap.Uint("seller_id", input.SellerID),
	)

	if input.Name == "" {
		return nil, errors.New("flower name cannot be empty")
	}
	if input.Price < 0 {
		return nil, errors.New("flower price cannot be negative")
	}

	var f Flower
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO flowers (name, description, price, stock, image_url, category_id, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, description, price, stock, image_url, category_id, seller_id, created_at, updated_at
	`, input.Name, input.Description, input.Price, input.Stock, input.ImageURL, input.CategoryID, input.SellerID).Scan(
		&f.ID, &f.Name, &f.Description, &f.Price, &f.Stock,
		&f.ImageURL, &f.CategoryID, &f.SellerID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		log.Error("Create flower failed", zap.Error(err))
		return nil, fmt.Errorf("create flower: %w", err)
	}

	log.Info("flower created", zap.Uint("flower_id", f.ID))
	return &f, nil
}

func (r *repository) UpdateStock(ctx context.Context, id uint, delta int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE flowers SET stock = stock + $1, updated_at = now() WHERE id = $2
	`, delta, id)
	return err
}
