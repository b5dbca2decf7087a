package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_SaveCallback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rec := &CallbackRecord{
			Provider:       "VNPAY",
			Reference:      "1001",
			Outcome:        OutcomePaid,
			ResponseCode:   "00",
			TransactionNo:  "14026112",
			SignatureValid: true,
			RawParams: map[string]string{
				"vnp_TxnRef":       "1001",
				"vnp_ResponseCode": "00",
			},
		}

		mock.ExpectExec("INSERT INTO payment_callbacks").
			WithArgs("VNPAY", "1001", "PAID", "00", "14026112", true, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.SaveCallback(context.Background(), rec)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RejectedCallbackIsStillRecorded", func(t *testing.T) {
		rec := &CallbackRecord{
			Provider:       "VNPAY",
			Reference:      "1003",
			Outcome:        OutcomeInvalid,
			ResponseCode:   "00",
			SignatureValid: false,
			RawParams:      map[string]string{"vnp_TxnRef": "1003"},
		}

		mock.ExpectExec("INSERT INTO payment_callbacks").
			WithArgs("VNPAY", "1003", "INVALID", "00", "", false, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(2, 1))

		err := repo.SaveCallback(context.Background(), rec)
		assert.NoError(t, err)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO payment_callbacks").
			WillReturnError(errors.New("db down"))

		err := repo.SaveCallback(context.Background(), &CallbackRecord{Provider: "VNPAY"})
		assert.Error(t, err)
	})
}

func TestRepository_UpdatePaymentStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE payments SET status").
		WithArgs("PAID", "14026112", "1001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdatePaymentStatus(context.Background(), "1001", "PAID", "14026112")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SavePayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	p := &Payment{
		OrderID:   12,
		Reference: "1001",
		Amount:    27000000,
		Status:    "PENDING",
	}

	mock.ExpectExec("INSERT INTO payments").
		WithArgs(uint(12), "1001", int64(27000000), "PENDING", "", "", "", "", "VNPAY", "VND").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SavePayment(context.Background(), p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetPaymentByOrder_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT id, order_id, reference").
		WithArgs(uint(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "reference", "amount", "status", "bank_code", "transaction_no", "created_at", "updated_at"}))

	_, err = repo.GetPaymentByOrder(context.Background(), 99)
	assert.Error(t, err)
}
