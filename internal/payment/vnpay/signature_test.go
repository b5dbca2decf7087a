package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "VNPAYSECRETKEY123"

func signedParams(t *testing.T, secret string, fields map[string]string) Params {
	t.Helper()

	p := make(Params, len(fields)+1)
	for k, v := range fields {
		p[k] = v
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(canonicalString(p)))
	p[FieldSecureHash] = hex.EncodeToString(mac.Sum(nil))
	return p
}

func validCallbackFields() map[string]string {
	return map[string]string{
		FieldTxnRef:            "1001",
		FieldAmount:            "27000000",
		FieldBankCode:          "NCB",
		FieldCardType:          "ATM",
		FieldOrderInfo:         "Thanh toan don hang 1001",
		FieldResponseCode:      "00",
		FieldTransactionStatus: "00",
		FieldTransactionNo:     "14226112",
		FieldPayDate:           "20260831102030",
	}
}

func TestSignatureVerifier_Verify(t *testing.T) {
	verifier := NewSignatureVerifier(testSecret)

	t.Run("ValidSignature", func(t *testing.T) {
		params := signedParams(t, testSecret, validCallbackFields())
		assert.True(t, verifier.Verify(params))
	})

	t.Run("UppercaseHexAccepted", func(t *testing.T) {
		params := signedParams(t, testSecret, validCallbackFields())
		params[FieldSecureHash] = strings.ToUpper(params[FieldSecureHash])
		assert.True(t, verifier.Verify(params))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		params := signedParams(t, "some-other-secret", validCallbackFields())
		assert.False(t, verifier.Verify(params))
	})

	t.Run("TamperedAmount", func(t *testing.T) {
		params := signedParams(t, testSecret, validCallbackFields())
		params[FieldAmount] = "1"
		assert.False(t, verifier.Verify(params))
	})

	t.Run("MissingSignature", func(t *testing.T) {
		params := signedParams(t, testSecret, validCallbackFields())
		delete(params, FieldSecureHash)
		assert.False(t, verifier.Verify(params))
	})

	t.Run("EmptySignature", func(t *testing.T) {
		params := signedParams(t, testSecret, validCallbackFields())
		params[FieldSecureHash] = ""
		assert.False(t, verifier.Verify(params))
	})

	t.Run("EmptyParamSet", func(t *testing.T) {
		assert.False(t, verifier.Verify(Params{}))
	})

	t.Run("HashTypeFieldIgnored", func(t *testing.T) {
		// vnp_SecureHashType travels with the callback but is excluded
		// from the digest, so adding it must not break verification.
		params := signedParams(t, testSecret, validCallbackFields())
		params[FieldSecureHashType] = "HmacSHA512"
		assert.True(t, verifier.Verify(params))
	})

	t.Run("StrippedFieldChangesDigest", func(t *testing.T) {
		fields := validCallbackFields()
		fields[FieldBankCode] = ""
		params := signedParams(t, testSecret, fields)

		// Signed with an empty bank code; removing the field entirely is a
		// different canonical string and must fail.
		assert.True(t, verifier.Verify(params))
		delete(params, FieldBankCode)
		assert.False(t, verifier.Verify(params))
	})
}

func TestCanonicalString(t *testing.T) {
	params := Params{
		"b":             "2",
		"a":             "1",
		"c":             "",
		FieldSecureHash: "deadbeef",
	}

	assert.Equal(t, "a=1&b=2&c=", canonicalString(params))
}

func TestSignVerifyRoundtrip(t *testing.T) {
	verifier := NewSignatureVerifier(testSecret)

	params := FromQuery(url.Values{
		FieldTxnRef: []string{"1002"},
		FieldAmount: []string{"500000"},
	})
	params[FieldSecureHash] = verifier.Sign(params)

	require.True(t, verifier.Verify(params))
}

func TestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set(FieldTxnRef, "1001")
	values.Add(FieldAmount, "100")
	values.Add(FieldAmount, "999") // repeated field: first value wins

	params := FromQuery(values)

	assert.Equal(t, "1001", params.TxnRef())
	amount, err := params.Amount()
	require.NoError(t, err)
	assert.Equal(t, int64(100), amount)
}
