package entities

import (
	"errors"
	"fmt"
	"testing"
)

func TestCreditCard_Masked(t *testing.T) {
	cases := map[string]string{
		"4111111111111111":   "************1111",
		" 5500000000000004 ": "************0004",
		"123":                "***",
		"":                   "",
	}
	for in, want := range cases {
		if got := (CreditCard{Number: in}).Masked(); got != want {
			t.Fatalf("Masked(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGatewayError_Is(t *testing.T) {
	sentinel := &GatewayError{Code: GatewayErrorSoapBroke, Message: "SOAP call failed."}
	err := fmt.Errorf("charge: %w", &GatewayError{Code: GatewayErrorSoapBroke, Message: "An error occurred"})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped error to match sentinel by code")
	}
	if errors.Is(err, &GatewayError{Code: GatewayErrorInvalidResponse}) {
		t.Fatalf("expected codes to differ")
	}

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) || gwErr.Message != "An error occurred" {
		t.Fatalf("unexpected unwrapped error: %+v", gwErr)
	}
	if gwErr.IsValidation() {
		t.Fatalf("soap_broke must not be a validation error")
	}
	if !(&GatewayError{Code: GatewayErrorInvalidCard}).IsValidation() {
		t.Fatalf("invalid_card must be a validation error")
	}
}

func TestTransaction_IsPaid(t *testing.T) {
	if !(Transaction{Status: TransactionStatusPaid}).IsPaid() {
		t.Fatalf("expected paid")
	}
	if (Transaction{Status: TransactionStatusPending}).IsPaid() {
		t.Fatalf("expected pending not paid")
	}
}
