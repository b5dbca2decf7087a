package callback

import (
	"context"
	"time"

	"floramart-be/internal/logger"
	"floramart-be/internal/order"
	"floramart-be/internal/payment"
	"floramart-be/internal/payment/vnpay"

	"go.uber.org/zap"
)

// Result is what the processor tells the HTTP layer to acknowledge.
type Result string

const (
	ResultPaid     Result = "PAID"
	ResultFailed   Result = "FAILED"
	ResultRejected Result = "REJECTED"
	ResultError    Result = "ERROR"
)

// Receipt is the processed callback summary handed to the transport layer.
// Rejected receipts stay deliberately sparse: a forger learns nothing from
// the response body.
type Receipt struct {
	Result       Result
	Reference    string
	Amount       int64
	ResponseCode string
	Description  string
	PayDate      string
	Duplicate    bool
}

// OrderService is the slice of the order service the processor needs.
type OrderService interface {
	ApplyPaymentOutcome(ctx context.Context, reference string, outcome payment.Outcome, callbackAmount int64) (order.TransitionResult, error)
	RecordGatewayTransaction(ctx context.Context, reference, transactionNo string) error
}

// CartStore clears the paying user's cart after a successful settle.
type CartStore interface {
	ClearForOrder(ctx context.Context, reference string) error
}

// CallbackLog persists the forensic record of every received callback.
type CallbackLog interface {
	SaveCallback(ctx context.Context, rec *payment.CallbackRecord) error
	UpdatePaymentStatus(ctx context.Context, reference, status, transactionNo string) error
}

const cartClearAttempts = 3

// Processor drives a gateway return callback through verification,
// classification and the order state machine, then runs side effects.
type Processor struct {
	verifier *vnpay.SignatureVerifier
	orders   OrderService
	carts    CartStore
	payments CallbackLog
}

func NewProcessor(verifier *vnpay.SignatureVerifier, orders OrderService, carts CartStore, payments CallbackLog) *Processor {
	return &Processor{
		verifier: verifier,
		orders:   orders,
		carts:    carts,
		payments: payments,
	}
}

// Process handles one callback end to end. It never panics outward; an
// internal panic degrades to ResultError so the gateway retries later.
func (p *Processor) Process(ctx context.Context, params vnpay.Params) (receipt Receipt) {
	log := logger.FromCtx(ctx).With(
		zap.String("reference", params.TxnRef()),
		zap.String("response_code", params.ResponseCode()),
	)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic while processing payment callback", zap.Any("panic", rec))
			receipt = Receipt{Result: ResultError}
		}
	}()

	// Signature first. Nothing in an unauthenticated callback is trusted,
	// not even the reference used for logging above.
	if !p.verifier.Verify(params) {
		log.Warn("callback rejected: signature verification failed")
		p.recordCallback(ctx, params, payment.OutcomeInvalid, false)
		return Receipt{Result: ResultRejected}
	}

	outcome := vnpay.Classify(params.ResponseCode(), params.TransactionStatus())
	if outcome == payment.OutcomeUnknown {
		log.Warn("unrecognized gateway code pair, treating as failed",
			zap.String("transaction_status", params.TransactionStatus()),
		)
	}
	p.recordCallback(ctx, params, outcome, true)

	amount, err := params.Amount()
	if err != nil {
		log.Warn("callback rejected: unparseable amount",
			zap.String("raw_amount", params[vnpay.FieldAmount]),
		)
		return Receipt{Result: ResultRejected}
	}

	res, err := p.orders.ApplyPaymentOutcome(ctx, params.TxnRef(), outcome, amount)
	if err != nil {
		log.Error("payment transition failed", zap.Error(err))
		return Receipt{Result: ResultError}
	}

	switch res.Code {
	case order.TransitionNotFound:
		return Receipt{Result: ResultRejected}

	case order.TransitionAmountMismatch:
		log.Warn("callback rejected: amount mismatch")
		return Receipt{Result: ResultRejected}

	case order.TransitionDuplicate:
		// Replay of a settled order. Acknowledge with the stored outcome
		// and run no side effects.
		return p.receiptFor(params, res.Status, amount, true)

	case order.TransitionApplied:
		p.settle(ctx, params, res.Status)
		return p.receiptFor(params, res.Status, amount, false)

	default:
		log.Error("unexpected transition code", zap.String("code", res.Code.String()))
		return Receipt{Result: ResultError}
	}
}

// settle runs the side effects of a fresh transition. The transition is
// already committed, so failures here are logged and absorbed rather than
// unwound.
func (p *Processor) settle(ctx context.Context, params vnpay.Params, status order.PaymentStatus) {
	log := logger.FromCtx(ctx).With(zap.String("reference", params.TxnRef()))

	if err := p.orders.RecordGatewayTransaction(ctx, params.TxnRef(), params.TransactionNo()); err != nil {
		log.Error("failed to record gateway transaction id", zap.Error(err))
	}

	if err := p.payments.UpdatePaymentStatus(ctx, params.TxnRef(), string(status), params.TransactionNo()); err != nil {
		log.Error("failed to update payment row", zap.Error(err))
	}

	if status != order.PaymentPaid {
		return
	}

	// Clear the cart only on the first transition into PAID. Bounded
	// retries because the order is already settled either way.
	var err error
	for attempt := 1; attempt <= cartClearAttempts; attempt++ {
		if err = p.carts.ClearForOrder(ctx, params.TxnRef()); err == nil {
			return
		}
		log.Warn("cart clear attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}
	log.Error("giving up clearing cart for paid order", zap.Error(err))
}

func (p *Processor) receiptFor(params vnpay.Params, status order.PaymentStatus, amount int64, duplicate bool) Receipt {
	r := Receipt{
		Reference:    params.TxnRef(),
		Amount:       amount,
		ResponseCode: params.ResponseCode(),
		Description:  vnpay.ResponseCodeDescription(params.ResponseCode()),
		PayDate:      params.PayDate(),
		Duplicate:    duplicate,
	}
	if status == order.PaymentPaid {
		r.Result = ResultPaid
	} else {
		r.Result = ResultFailed
	}
	return r
}

// recordCallback is best effort: a forensic write failure must not block
// acknowledging the gateway.
func (p *Processor) recordCallback(ctx context.Context, params vnpay.Params, outcome payment.Outcome, signatureValid bool) {
	rec := &payment.CallbackRecord{
		Provider:       "VNPAY",
		Reference:      params.TxnRef(),
		Outcome:        outcome,
		ResponseCode:   params.ResponseCode(),
		TransactionNo:  params.TransactionNo(),
		SignatureValid: signatureValid,
		RawParams:      params,
		ReceivedAt:     time.Now(),
	}
	if err := p.payments.SaveCallback(ctx, rec); err != nil {
		logger.FromCtx(ctx).Error("failed to save callback record",
			zap.String("reference", params.TxnRef()),
			zap.Error(err),
		)
	}
}
