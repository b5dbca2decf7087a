package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type Repository interface {
	SavePayment(ctx context.Context, p *Payment) error
	UpdatePaymentStatus(ctx context.Context, reference, status, transactionNo string) error
	GetPaymentByOrder(ctx context.Context, orderID uint) (*Payment, error)
	SaveCallback(ctx context.Context, rec *CallbackRecord) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SavePayment(ctx context.Context, p *Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (order_id, reference, amount, status, bank_code, card_type, transaction_no, pay_date, provider, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		p.OrderID, p.Reference, p.Amount, p.Status, p.BankCode, p.CardType, p.TransactionNo, p.PayDate,
		"VNPAY", "VND",
	)
	return err
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, reference, status, transactionNo string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE payments SET status = $1, transaction_no = $2, updated_at = now() WHERE reference = $3
	`, status, transactionNo, reference)
	return err
}

func (r *repository) GetPaymentByOrder(ctx context.Context, orderID uint) (*Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, reference, amount, status, bank_code, transaction_no, created_at, updated_at
		FROM payments WHERE order_id = $1
	`, orderID)

	var p Payment
	err := row.Scan(
		&p.ID, &p.OrderID, &p.Reference, &p.Amount,
		&p.Status, &p.BankCode, &p.TransactionNo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveCallback records every received callback for forensic replay
// analysis, including rejected ones.
func (r *repository) SaveCallback(ctx context.Context, rec *CallbackRecord) error {
	raw, err := json.Marshal(rec.RawParams)
	if err != nil {
		return fmt.Errorf("marshal callback params: %w", err)
	}

	const q = `
	INSERT INTO payment_callbacks (
		provider,
		reference,
		outcome,
		response_code,
		transaction_no,
		signature_valid,
		raw_params
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err = r.db.ExecContext(
		ctx,
		q,
		rec.Provider,
		rec.Reference,
		string(rec.Outcome),
		rec.ResponseCode,
		rec.TransactionNo,
		rec.SignatureValid,
		raw,
	)
	return err
}
