package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{"id", "email", "password", "role", "created_at"}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(1, "ana@example.com", "hashed", "USER", time.Now())

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("ana@example.com", "hashed", "USER").
			WillReturnRows(rows)

		u, err := repo.Create(context.Background(), "ana@example.com", "hashed", "USER")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, err := repo.Create(context.Background(), "ana@example.com", "hashed", "USER")
		assert.Error(t, err)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(2, "bud@example.com", "hashed", "SELLER", time.Now())

		mock.ExpectQuery("SELECT u.id, u.email").
			WithArgs("bud@example.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(context.Background(), "bud@example.com")
		require.NoError(t, err)
		assert.Equal(t, RoleSeller, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT u.id, u.email").
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
		assert.Error(t, err)
	})
}

func TestRepository_UpdateRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE users SET role").
		WithArgs("SELLER", uint(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateRole(context.Background(), 2, "SELLER")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
