package category

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
	GetCategories(ctx context.Context, filter *string, limit, page *int32) ([]*Category, error)
	AddCategory(ctx context.Context, name string) (*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCategories(
	ctx context.Context,
	filter *string,
	limit *int32,
	page *int32,
) ([]*Category, error) {

	// ---------- DEFAULTS ----------
	finalLimit := int32(20)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}

	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)

	// ---------- BASE QUERY ----------
	query := `
		SELECT
			c.id,
			c.name
		FROM categories c
	`

	where := []string{}
	args := []interface{}{}

	// ---------- FILTER ----------
	if filter != nil && *filter != "" {
		where = append(where, fmt.Sprintf("c.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*filter+"%")
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	// ---------- ORDER ----------
	query += " ORDER BY c.name ASC"

	// ---------- PAGINATION ----------
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, finalOffset)

	// ---------- EXECUTE ----------
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetCategories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := make([]*Category, 0, finalLimit)

	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return categories, nil
}

func (r *repository) AddCategory(
	ctx context.Context,
	name string,
) (*Category, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("category_name", name),
	)

	if name == "" {
		log.Warn("AddCategory validation failed: empty name")
		return nil, errors.New("category name cannot be empty")
	}

	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name
	`

	var c Category

	err := r.db.QueryRowContext(ctx, query, name).
		Scan(&c.ID, &c.Name)
	if err != nil {
		log.Error("AddCategory DB query failed", zap.Error(err))
		return nil, fmt.Errorf("add category failed: %w", err)
	}

	log.Info("AddCategory success",
		zap.Uint("category_id", c.ID),
	)

	return &c, nil
}
