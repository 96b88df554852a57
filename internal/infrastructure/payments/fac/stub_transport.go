package fac

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// StubTransport approves every Authorize call without leaving the process.
// It backs the gateway when mock mode is enabled for local runs.
type StubTransport struct {
	logger *zap.Logger
}

var _ Transport = (*StubTransport)(nil)

func NewStubTransport(logger *zap.Logger) *StubTransport {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StubTransport{logger: logger}
}

func (t *StubTransport) Authorize(_ context.Context, req AuthorizeRequest) (*AuthorizeResponse, error) {
	orderNumber := req.TransactionDetails.OrderNumber
	reference := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	t.logger.Info("[payment][gateway] mock authorize approved",
		zap.String("invoice_id", orderNumber),
		zap.String("reference_id", reference),
	)

	code := strconv.Itoa(approvedResponseCode)
	description := "Transaction is approved."
	return &AuthorizeResponse{
		AuthorizeResult: &AuthorizeResult{
			AcquirerID:  &req.TransactionDetails.AcquirerID,
			MerchantID:  &req.TransactionDetails.MerchantID,
			OrderNumber: &orderNumber,
			CreditCardTransactionResults: &CreditCardTransactionResults{
				ReasonCode:            &code,
				ReasonCodeDescription: &description,
				ReferenceNumber:       &reference,
				ResponseCode:          &code,
			},
		},
	}, nil
}
