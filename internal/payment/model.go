package payment

import (
	"time"
)

// Outcome is the normalized result of a gateway callback, derived once per
// callback by the classifier.
type Outcome string

const (
	OutcomePaid    Outcome = "PAID"
	OutcomeFailed  Outcome = "FAILED"
	OutcomeInvalid Outcome = "INVALID"
	OutcomeUnknown Outcome = "UNKNOWN"
)

type Payment struct {
	ID            uint
	OrderID       uint
	Reference     string
	Amount        int64
	Status        string
	BankCode      string
	CardType      string
	TransactionNo string
	PayDate       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CallbackRecord is the forensic audit row written for every gateway
// callback, valid or not.
type CallbackRecord struct {
	ID             int64
	Provider       string
	Reference      string
	Outcome        Outcome
	ResponseCode   string
	TransactionNo  string
	SignatureValid bool
	RawParams      map[string]string
	ReceivedAt     time.Time
}
