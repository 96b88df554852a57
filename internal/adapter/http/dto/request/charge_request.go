package request

import (
	"errors"
	"strconv"
	"strings"

	"fac_gateway/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const defaultCurrencyExponent = 2

var ErrInvalidCardExpiry = errors.New("card expiry must be MM/YY or MMYY")

type CardRequest struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type AddressRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	CountryCode string `json:"country_code"`
}

// ChargeRequest is the payload of POST /v1/charges.
//
// Card and address are optional here so the gateway reports invalid_card /
// invalid_address itself.
type ChargeRequest struct {
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currency_code" binding:"required"`
	CurrencyExponent *int            `json:"currency_exponent"`
	InvoiceID        string          `json:"invoice_id"`
	Card             *CardRequest    `json:"card"`
	Address          *AddressRequest `json:"address"`
}

// ToPayment converts the request into the domain payment, normalizing the card expiry.
func (r ChargeRequest) ToPayment() (entities.Payment, error) {
	exponent := defaultCurrencyExponent
	if r.CurrencyExponent != nil {
		exponent = *r.CurrencyExponent
	}

	p := entities.Payment{
		Amount:           r.Amount,
		CurrencyCode:     strings.TrimSpace(r.CurrencyCode),
		CurrencyExponent: exponent,
		InvoiceID:        strings.TrimSpace(r.InvoiceID),
	}

	if r.Card != nil {
		expiry, err := NormalizeExpiry(r.Card.Expiry)
		if err != nil {
			return entities.Payment{}, err
		}
		p.Card = &entities.CreditCard{
			Number: strings.ReplaceAll(strings.TrimSpace(r.Card.Number), " ", ""),
			Expiry: expiry,
			CVV:    strings.TrimSpace(r.Card.CVV),
		}
	}

	if a := r.Address; a != nil {
		p.Address = &entities.Address{
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			Email:       a.Email,
			Phone:       a.Phone,
			Address1:    a.Address1,
			City:        a.City,
			State:       a.State,
			Zip:         a.Zip,
			CountryCode: a.CountryCode,
		}
	}
	return p, nil
}

// NormalizeExpiry accepts "MM/YY" or "MMYY" and returns MMYY, the format FAC
// expects. An empty value is passed through.
func NormalizeExpiry(in string) (string, error) {
	s := strings.ReplaceAll(strings.TrimSpace(in), "/", "")
	if s == "" {
		return "", nil
	}
	if len(s) != 4 {
		return "", ErrInvalidCardExpiry
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", ErrInvalidCardExpiry
		}
	}
	mm, _ := strconv.Atoi(s[:2])
	if mm < 1 || mm > 12 {
		return "", ErrInvalidCardExpiry
	}
	return s, nil
}
