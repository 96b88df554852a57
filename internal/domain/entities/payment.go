package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Payment is the generic card charge the gateway adapter consumes.
//
// Monetary representation:
//   - Amount is expressed in major units (e.g. 100 means 100.00 for a two-decimal currency).
//   - CurrencyCode is the ISO-4217 numeric code expected by the processor (e.g. "840").
//   - CurrencyExponent is the number of decimal places of the currency minor unit.
type Payment struct {
	Amount           decimal.Decimal
	CurrencyCode     string
	CurrencyExponent int
	InvoiceID        string
	Card             *CreditCard
	Address          *Address
}

// CreditCard holds the card data sent to the processor. Expiry is MMYY.
type CreditCard struct {
	Number string
	Expiry string
	CVV    string
}

// Masked returns the card number with every digit but the last four replaced.
func (c CreditCard) Masked() string {
	n := strings.TrimSpace(c.Number)
	if len(n) <= 4 {
		return strings.Repeat("*", len(n))
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}

// Address is the billing address of the card holder.
type Address struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address1    string
	City        string
	State       string
	Zip         string
	CountryCode string
}
