package usecase

import (
	"context"
	"errors"
	"strings"

	"fac_gateway/internal/domain/entities"
	"fac_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")

// IChargeUseCase charges a card through the configured payment gateway.
type IChargeUseCase interface {
	Charge(ctx context.Context, p entities.Payment) (entities.Transaction, error)
}

type ChargeUseCase struct {
	gateway interfaces.IPaymentGateway
	logger  *zap.Logger
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(gateway interfaces.IPaymentGateway, logger *zap.Logger) *ChargeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChargeUseCase{gateway: gateway, logger: logger}
}

// Charge assigns an invoice id when the caller did not provide one, then hands
// the payment to the gateway. Gateway errors are returned untouched.
func (u *ChargeUseCase) Charge(ctx context.Context, p entities.Payment) (entities.Transaction, error) {
	if u.gateway == nil {
		u.logger.Error("[payment][usecase] gateway not configured")
		return entities.Transaction{}, ErrPaymentGatewayNotConfigured
	}

	p.InvoiceID = strings.TrimSpace(p.InvoiceID)
	if p.InvoiceID == "" {
		p.InvoiceID = uuid.NewString()
		u.logger.Info("[payment][usecase] generated invoice id", zap.String("invoice_id", p.InvoiceID))
	}

	tx, err := u.gateway.Process(ctx, p)
	if err != nil {
		u.logger.Warn("[payment][usecase] charge failed",
			zap.String("invoice_id", p.InvoiceID),
			zap.Error(err),
		)
		return entities.Transaction{}, err
	}

	// The processor echoes the order number; keep ours when it does not.
	if tx.TransactionID == "" {
		tx.TransactionID = p.InvoiceID
	}
	u.logger.Info("[payment][usecase] charge done",
		zap.String("invoice_id", p.InvoiceID),
		zap.String("status", string(tx.Status)),
		zap.Int("code", tx.Code),
	)
	return tx, nil
}
