package order

import (
	"time"
)

// PaymentStatus is monotone: once PAID or FAILED it never changes again.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Terminal reports whether no further transition is legal from s.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentPaid || s == PaymentFailed
}

type Order struct {
	ID            uint
	UserID        uint
	Reference     string
	Amount        int64
	PaymentStatus PaymentStatus
	TransactionNo string
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItem
}

type OrderItem struct {
	ID       uint
	OrderID  uint
	FlowerID uint
	Quantity int
	Price    int64
}

// TransitionCode describes what ApplyPaymentOutcome did.
type TransitionCode int

const (
	// TransitionApplied means the order moved out of PENDING on this call.
	TransitionApplied TransitionCode = iota
	// TransitionDuplicate means the order was already settled; nothing changed.
	TransitionDuplicate
	// TransitionNotFound means no order matches the reference.
	TransitionNotFound
	// TransitionAmountMismatch means the callback amount disagrees with the
	// order; the transition was refused and the order stays PENDING.
	TransitionAmountMismatch
)

func (c TransitionCode) String() string {
	switch c {
	case TransitionApplied:
		return "applied"
	case TransitionDuplicate:
		return "duplicate"
	case TransitionNotFound:
		return "not_found"
	case TransitionAmountMismatch:
		return "amount_mismatch"
	default:
		return "unknown"
	}
}

// TransitionResult carries the transition code and the order's payment
// status after the call (the pre-existing status for duplicates).
type TransitionResult struct {
	Code   TransitionCode
	Status PaymentStatus
}
