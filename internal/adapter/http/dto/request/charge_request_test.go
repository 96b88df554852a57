package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNormalizeExpiry(t *testing.T) {
	ok := map[string]string{"12/30": "1230", "0129": "0129", " 05/27 ": "0527", "": ""}
	for in, want := range ok {
		got, err := NormalizeExpiry(in)
		if err != nil || got != want {
			t.Fatalf("NormalizeExpiry(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	for _, in := range []string{"13/30", "00/30", "1/30", "ab/cd", "12/2030"} {
		if _, err := NormalizeExpiry(in); !errors.Is(err, ErrInvalidCardExpiry) {
			t.Fatalf("NormalizeExpiry(%q) expected ErrInvalidCardExpiry, got %v", in, err)
		}
	}
}

func TestChargeRequest_ToPayment(t *testing.T) {
	var r ChargeRequest
	body := `{"amount":"100","currency_code":" 840 ","invoice_id":" ORD1 ",
		"card":{"number":"4111 1111 1111 1111","expiry":"12/30","cvv":"123"},
		"address":{"first_name":"Jane","country_code":"388"}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p, err := r.ToPayment()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Amount.String() != "100" || p.CurrencyCode != "840" || p.CurrencyExponent != 2 || p.InvoiceID != "ORD1" {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if p.Card == nil || p.Card.Number != "4111111111111111" || p.Card.Expiry != "1230" || p.Card.CVV != "123" {
		t.Fatalf("unexpected card: %+v", p.Card)
	}
	if p.Address == nil || p.Address.FirstName != "Jane" || p.Address.CountryCode != "388" {
		t.Fatalf("unexpected address: %+v", p.Address)
	}
}

func TestChargeRequest_ToPayment_OptionalParts(t *testing.T) {
	exp := 0
	p, err := ChargeRequest{CurrencyCode: "392", CurrencyExponent: &exp}.ToPayment()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Card != nil || p.Address != nil || p.CurrencyExponent != 0 {
		t.Fatalf("unexpected payment: %+v", p)
	}

	_, err = ChargeRequest{Card: &CardRequest{Expiry: "99/99"}}.ToPayment()
	if !errors.Is(err, ErrInvalidCardExpiry) {
		t.Fatalf("expected ErrInvalidCardExpiry, got %v", err)
	}
}
