package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"sort"
	"strings"
)

// SignatureVerifier authenticates gateway callbacks against the merchant
// hash secret. The secret is injected at construction; verification is a
// pure function of its inputs.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// Verify recomputes the HMAC-SHA512 digest over the canonical string and
// compares it to the supplied signature in constant time. Any mismatch,
// missing signature, or empty parameter set yields false; it never returns
// an error across the trust boundary.
func (v *SignatureVerifier) Verify(params Params) bool {
	if len(params) == 0 {
		return false
	}

	supplied, ok := params[FieldSecureHash]
	if !ok || supplied == "" {
		return false
	}

	mac := hmac.New(sha512.New, v.secret)
	mac.Write([]byte(canonicalString(params)))
	expected := hex.EncodeToString(mac.Sum(nil))

	// Hex compare is case-insensitive; hmac.Equal keeps it constant time.
	return hmac.Equal([]byte(strings.ToLower(supplied)), []byte(expected))
}

// canonicalString builds the deterministic digest input: the hash fields
// are excluded, the rest are sorted lexicographically by name and joined
// as name=value pairs with "&". Empty values are kept as empty strings
// rather than omitted, so a stripped field can never collide with an
// empty one.
func canonicalString(params Params) string {
	names := make([]string, 0, len(params))
	for name := range params {
		if name == FieldSecureHash || name == FieldSecureHashType {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}

// Sign computes the digest for an outbound parameter set. Exposed so tests
// and payment-URL construction share one canonicalization.
func (v *SignatureVerifier) Sign(params Params) string {
	mac := hmac.New(sha512.New, v.secret)
	mac.Write([]byte(canonicalString(params)))
	return hex.EncodeToString(mac.Sum(nil))
}
