package fac

import "fac_gateway/internal/domain/entities"

var (
	ErrInvalidPublicKey  = &entities.GatewayError{Code: entities.GatewayErrorInvalidPublicKey, Message: "Invalid public key."}
	ErrInvalidPrivateKey = &entities.GatewayError{Code: entities.GatewayErrorInvalidPrivateKey, Message: "Invalid private key."}
	ErrInvalidAcquirerID = &entities.GatewayError{Code: entities.GatewayErrorInvalidAcquirerID, Message: "Invalid acquirer id."}
	ErrInvalidAmount     = &entities.GatewayError{Code: entities.GatewayErrorInvalidAmount, Message: "Invalid amount."}
	ErrInvalidCard       = &entities.GatewayError{Code: entities.GatewayErrorInvalidCard, Message: "Invalid credit card."}
	ErrInvalidAddress    = &entities.GatewayError{Code: entities.GatewayErrorInvalidAddress, Message: "Invalid billing address."}
	ErrInvalidResponse   = &entities.GatewayError{Code: entities.GatewayErrorInvalidResponse, Message: "Invalid response from the gateway."}

	// ErrSoapBroke only serves errors.Is checks; returned errors carry the fault message.
	ErrSoapBroke = &entities.GatewayError{Code: entities.GatewayErrorSoapBroke, Message: "SOAP call failed."}
)

func newSoapBrokeError(faultMessage string) *entities.GatewayError {
	return &entities.GatewayError{Code: entities.GatewayErrorSoapBroke, Message: faultMessage}
}
