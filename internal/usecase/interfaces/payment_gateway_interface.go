package interfaces

import (
	"context"

	"fac_gateway/internal/domain/entities"
)

// IPaymentGateway abstracts the card processor adapter (First Atlantic Commerce).
//
// Process performs at most one remote authorization per call. Failures are
// returned as *entities.GatewayError values.
type IPaymentGateway interface {
	Process(ctx context.Context, p entities.Payment) (entities.Transaction, error)
}
