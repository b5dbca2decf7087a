package vnpay

import "floramart-be/internal/payment"

// Response codes VNPay documents for the return callback. Anything outside
// this set classifies as Unknown so genuinely new codes stay visible to
// operators instead of silently failing.
var responseCodeDescriptions = map[string]string{
	"00": "transaction successful",
	"07": "money deducted, transaction suspected fraudulent",
	"09": "card not registered for internet banking",
	"10": "card authentication failed more than 3 times",
	"11": "payment window expired",
	"12": "card or account locked",
	"13": "wrong OTP entered",
	"24": "customer cancelled the transaction",
	"51": "insufficient funds",
	"65": "daily transaction limit exceeded",
	"75": "issuing bank under maintenance",
	"79": "wrong payment password entered too many times",
	"99": "other gateway-side error",
}

var transactionStatusCodes = map[string]struct{}{
	"00": {}, "01": {}, "02": {}, "04": {}, "05": {},
	"06": {}, "07": {}, "09": {},
}

// Classify maps the gateway response code and transaction status to a
// normalized outcome. Total over its inputs: every pair maps to exactly
// one outcome, and only ("00","00") means paid.
func Classify(responseCode, transactionStatus string) payment.Outcome {
	if responseCode == "00" && transactionStatus == "00" {
		return payment.OutcomePaid
	}

	_, knownResponse := responseCodeDescriptions[responseCode]
	_, knownStatus := transactionStatusCodes[transactionStatus]
	if knownResponse && knownStatus {
		return payment.OutcomeFailed
	}

	return payment.OutcomeUnknown
}

// ResponseCodeDescription returns the documented meaning of a response
// code, or "unrecognized code" for anything outside the known set.
func ResponseCodeDescription(code string) string {
	if desc, ok := responseCodeDescriptions[code]; ok {
		return desc
	}
	return "unrecognized code"
}
