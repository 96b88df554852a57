package fac

import (
	"crypto/sha1"
	"encoding/base64"
	"strings"

	"github.com/shopspring/decimal"
)

const paddedAmountWidth = 12

// PadAmount renders amount the way FAC expects it: the decimal text followed by
// "00", left padded with zeros to twelve characters. 100 becomes "000000010000".
// The zeros are appended to the text, never computed, so no rounding happens.
func PadAmount(amount decimal.Decimal) string {
	s := amount.String() + "00"
	if len(s) >= paddedAmountWidth {
		return s
	}
	return strings.Repeat("0", paddedAmountWidth-len(s)) + s
}

// Signature computes the request signature:
// base64(sha1(privateKey + publicKey + acquirerID + invoiceID + PadAmount(amount) + currencyCode)).
// The field order, padding and encoding are part of the processor contract.
func Signature(privateKey, publicKey, acquirerID, invoiceID string, amount decimal.Decimal, currencyCode string) string {
	var b strings.Builder
	b.WriteString(privateKey)
	b.WriteString(publicKey)
	b.WriteString(acquirerID)
	b.WriteString(invoiceID)
	b.WriteString(PadAmount(amount))
	b.WriteString(currencyCode)

	sum := sha1.Sum([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(sum[:])
}
