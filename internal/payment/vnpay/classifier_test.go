package vnpay

import (
	"testing"

	"floramart-be/internal/payment"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("Paid_OnlyOnDoubleZero", func(t *testing.T) {
		assert.Equal(t, payment.OutcomePaid, Classify("00", "00"))
	})

	t.Run("Failed_RecognizedCodes", func(t *testing.T) {
		cases := []struct {
			responseCode      string
			transactionStatus string
		}{
			{"24", "02"}, // customer cancelled
			{"51", "02"}, // insufficient funds
			{"11", "02"}, // payment window expired
			{"00", "02"}, // codes must agree for paid
			{"07", "00"},
		}

		for _, tc := range cases {
			assert.Equal(t, payment.OutcomeFailed, Classify(tc.responseCode, tc.transactionStatus),
				"response=%s status=%s", tc.responseCode, tc.transactionStatus)
		}
	})

	t.Run("Unknown_UnrecognizedCodes", func(t *testing.T) {
		assert.Equal(t, payment.OutcomeUnknown, Classify("42", "00"))
		assert.Equal(t, payment.OutcomeUnknown, Classify("00", "88"))
		assert.Equal(t, payment.OutcomeUnknown, Classify("", ""))
	})

	t.Run("Total_EveryPairMapsToExactlyOneOutcome", func(t *testing.T) {
		inputs := []string{"", "00", "07", "24", "51", "99", "xx", "123"}
		for _, rc := range inputs {
			for _, ts := range inputs {
				outcome := Classify(rc, ts)
				assert.Contains(t,
					[]payment.Outcome{payment.OutcomePaid, payment.OutcomeFailed, payment.OutcomeUnknown},
					outcome)
				if outcome == payment.OutcomePaid {
					assert.Equal(t, "00", rc)
					assert.Equal(t, "00", ts)
				}
			}
		}
	})
}

func TestResponseCodeDescription(t *testing.T) {
	assert.Equal(t, "customer cancelled the transaction", ResponseCodeDescription("24"))
	assert.Equal(t, "unrecognized code", ResponseCodeDescription("not-a-code"))
}
