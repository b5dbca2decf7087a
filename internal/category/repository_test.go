package category

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AddCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	name := "Roses"

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(1, name)

		// Expect INSERT returning ID and Name
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs(name).
			WillReturnRows(rows)

		res, err := repo.AddCategory(context.Background(), name)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), res.ID)
		assert.Equal(t, name, res.Name)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := repo.AddCategory(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").WillReturnError(errors.New("db error"))
		_, err := repo.AddCategory(context.Background(), name)
		assert.Error(t, err)
	})
}

func TestRepository_GetCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success_NoFilter", func(t *testing.T) {
		limit := int32(10)
		page := int32(1)

		rows := sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Bouquets").
			AddRow(2, "Roses")

		mock.ExpectQuery("SELECT .* FROM categories c ORDER BY c.name ASC LIMIT \\$1 OFFSET \\$2").
			WithArgs(limit, int32(0)).
			WillReturnRows(rows)

		res, err := repo.GetCategories(context.Background(), nil, &limit, &page)
		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("Success_WithFilter", func(t *testing.T) {
		filter := "rose"
		limit := int32(10)
		page := int32(1)

		rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Roses")

		mock.ExpectQuery("SELECT .* FROM categories c WHERE c.name ILIKE \\$1 ORDER BY c.name ASC LIMIT \\$2 OFFSET \\$3").
			WithArgs("%rose%", limit, int32(0)).
			WillReturnRows(rows)

		res, err := repo.GetCategories(context.Background(), &filter, &limit, &page)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Roses", res[0].Name)
	})

	t.Run("DBError", func(t *testing.T) {
		limit := int32(10)
		page := int32(1)

		mock.ExpectQuery("SELECT .* FROM categories c").WillReturnError(errors.New("db down"))

		_, err := repo.GetCategories(context.Background(), nil, &limit, &page)
		assert.Error(t, err)
	})
}
