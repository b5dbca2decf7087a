package order

import (
	"context"
	"errors"
	"fmt"

	"floramart-be/internal/logger"
	"floramart-be/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// Checkout snapshots the user's cart into a PENDING order with a fresh
	// transaction reference.
	Checkout(ctx context.Context, userID uint) (*Order, error)

	GetOrders(ctx context.Context, userID uint, limit, page int32) ([]*Order, error)
	GetOrderDetail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error)

	// ApplyPaymentOutcome is the payment state machine. It looks the order
	// up by reference and attempts the PENDING -> PAID / PENDING -> FAILED
	// transition, holding the per-reference lock across the
	// check-then-commit sequence. Settled orders yield Duplicate without
	// mutation; an amount disagreement refuses the transition.
	ApplyPaymentOutcome(ctx context.Context, reference string, outcome payment.Outcome, callbackAmount int64) (TransitionResult, error)

	// RecordGatewayTransaction persists the gateway transaction id once.
	RecordGatewayTransaction(ctx context.Context, reference, transactionNo string) error
}

type service struct {
	repo  Repository
	locks *refLocks
}

func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		locks: newRefLocks(),
	}
}

func (s *service) Checkout(ctx context.Context, userID uint) (*Order, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}

	reference := uuid.New().String()
	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", userID),
		zap.String("reference", reference),
	)

	o, err := s.repo.CreateFromCart(ctx, userID, reference)
	if err != nil {
		log.Error("checkout failed", zap.Error(err))
		return nil, err
	}

	log.Info("checkout created pending order", zap.Uint("order_id", o.ID))
	return o, nil
}

func (s *service) GetOrders(ctx context.Context, userID uint, limit, page int32) ([]*Order, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.GetOrders(ctx, userID, limit, page)
}

func (s *service) GetOrderDetail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrUnauthorized
	}

	return o, nil
}

func (s *service) ApplyPaymentOutcome(ctx context.Context, reference string, outcome payment.Outcome, callbackAmount int64) (TransitionResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("reference", reference),
		zap.String("outcome", string(outcome)),
		zap.Int64("callback_amount", callbackAmount),
	)

	// Serialize per reference: two concurrent callbacks for the same order
	// must not both observe PENDING.
	s.locks.lock(reference)
	defer s.locks.unlock(reference)

	o, err := s.repo.GetByReference(ctx, reference)
	if errors.Is(err, ErrOrderNotFound) {
		log.Warn("callback for unknown order reference")
		return TransitionResult{Code: TransitionNotFound}, nil
	}
	if err != nil {
		return TransitionResult{}, fmt.Errorf("lookup order %q: %w", reference, err)
	}

	if o.PaymentStatus.Terminal() {
		log.Info("order already settled, callback is a no-op",
			zap.String("status", string(o.PaymentStatus)),
		)
		return TransitionResult{Code: TransitionDuplicate, Status: o.PaymentStatus}, nil
	}

	if callbackAmount != o.Amount {
		log.Warn("callback amount disagrees with order, refusing transition",
			zap.Int64("order_amount", o.Amount),
		)
		return TransitionResult{Code: TransitionAmountMismatch, Status: o.PaymentStatus}, nil
	}

	target := PaymentFailed
	if outcome == payment.OutcomePaid {
		target = PaymentPaid
	}

	ok, err := s.repo.CommitPaymentTransition(ctx, reference, PaymentPending, target)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("commit transition %q: %w", reference, err)
	}
	if !ok {
		// Lost the compare-and-set: someone else settled the order between
		// our read and write (e.g. another instance). Report duplicate.
		current, err := s.repo.GetByReference(ctx, reference)
		if err != nil {
			return TransitionResult{}, fmt.Errorf("reread order %q: %w", reference, err)
		}
		log.Info("transition conflict, order settled concurrently",
			zap.String("status", string(current.PaymentStatus)),
		)
		return TransitionResult{Code: TransitionDuplicate, Status: current.PaymentStatus}, nil
	}

	log.Info("payment transition applied", zap.String("status", string(target)))
	return TransitionResult{Code: TransitionApplied, Status: target}, nil
}

func (s *service) RecordGatewayTransaction(ctx context.Context, reference, transactionNo string) error {
	return s.repo.RecordGatewayTransaction(ctx, reference, transactionNo)
}
