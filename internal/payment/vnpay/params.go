package vnpay

import (
	"net/url"
	"strconv"
)

// Callback field names as VNPay sends them on the return redirect.
// Everything is a string on the wire; numeric interpretation happens only
// after the signature has been verified.
const (
	FieldTxnRef            = "vnp_TxnRef"
	FieldAmount            = "vnp_Amount"
	FieldBankCode          = "vnp_BankCode"
	FieldCardType          = "vnp_CardType"
	FieldOrderInfo         = "vnp_OrderInfo"
	FieldResponseCode      = "vnp_ResponseCode"
	FieldTransactionStatus = "vnp_TransactionStatus"
	FieldTransactionNo     = "vnp_TransactionNo"
	FieldPayDate           = "vnp_PayDate"
	FieldSecureHash        = "vnp_SecureHash"
	FieldSecureHashType    = "vnp_SecureHashType"
)

// Params is the callback parameter set keyed by gateway field name.
type Params map[string]string

// FromQuery flattens the query string into Params. VNPay never sends
// repeated fields; the first value wins if a forged request does.
func FromQuery(values url.Values) Params {
	p := make(Params, len(values))
	for name := range values {
		p[name] = values.Get(name)
	}
	return p
}

func (p Params) TxnRef() string            { return p[FieldTxnRef] }
func (p Params) BankCode() string          { return p[FieldBankCode] }
func (p Params) CardType() string          { return p[FieldCardType] }
func (p Params) ResponseCode() string      { return p[FieldResponseCode] }
func (p Params) TransactionStatus() string { return p[FieldTransactionStatus] }
func (p Params) TransactionNo() string     { return p[FieldTransactionNo] }
func (p Params) PayDate() string           { return p[FieldPayDate] }

// Amount parses the callback amount field as minor currency units.
func (p Params) Amount() (int64, error) {
	return strconv.ParseInt(p[FieldAmount], 10, 64)
}
