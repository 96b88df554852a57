package entities

import "fmt"

// Gateway error codes. Validation codes are recoverable by re-supplying data,
// GatewayErrorSoapBroke carries the transport fault message verbatim and
// GatewayErrorInvalidResponse flags a protocol mismatch.
const (
	GatewayErrorInvalidPublicKey  = "invalid_public_key"
	GatewayErrorInvalidPrivateKey = "invalid_private_key"
	GatewayErrorInvalidAcquirerID = "invalid_acquirer_id"
	GatewayErrorInvalidAmount     = "invalid_amount"
	GatewayErrorInvalidCard       = "invalid_card"
	GatewayErrorInvalidAddress    = "invalid_address"
	GatewayErrorSoapBroke         = "soap_broke"
	GatewayErrorInvalidResponse   = "invalid_response"
)

// GatewayError is a (code, message) failure returned by a payment gateway.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any GatewayError carrying the same code, so sentinels compare
// equal to errors built with a different message.
func (e *GatewayError) Is(target error) bool {
	t, ok := target.(*GatewayError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// IsValidation reports whether the error was raised before any remote call.
func (e *GatewayError) IsValidation() bool {
	switch e.Code {
	case GatewayErrorInvalidPublicKey, GatewayErrorInvalidPrivateKey, GatewayErrorInvalidAcquirerID,
		GatewayErrorInvalidAmount, GatewayErrorInvalidCard, GatewayErrorInvalidAddress:
		return true
	}
	return false
}
