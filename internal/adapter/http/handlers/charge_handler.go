package handlers

import (
	"errors"
	"net/http"

	request "fac_gateway/internal/adapter/http/dto/request"
	response "fac_gateway/internal/adapter/http/dto/response"
	"fac_gateway/internal/domain/entities"
	"fac_gateway/internal/usecase"
	"fac_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidCardExpiry    = pkg.NewDomainErrorSimple("INVALID_CARD_EXPIRY", "Card expiry must be MM/YY or MMYY", http.StatusBadRequest)
)

// ChargeHandler handles HTTP requests for card charges.
type ChargeHandler struct {
	usecase usecase.IChargeUseCase
	logger  *zap.Logger
}

func NewChargeHandler(uc usecase.IChargeUseCase, logger *zap.Logger) *ChargeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChargeHandler{usecase: uc, logger: logger}
}

// CreateCharge charges a card and returns the resulting transaction.
//
// @Summary      Charge a card
// @Tags         charges
// @Accept       json
// @Produce      json
// @Param        charge  body      request.ChargeRequest  true  "Charge payload"
// @Success      200     {object}  response.ChargeResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Router       /charges [post]
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("[payment][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	payment, err := payload.ToPayment()
	if err != nil {
		h.logger.Warn("[payment][handler] invalid card expiry", zap.Error(err))
		c.JSON(errInvalidCardExpiry.HTTPStatus, errInvalidCardExpiry.ToHTTPError())
		return
	}

	tx, err := h.usecase.Charge(c.Request.Context(), payment)
	if err != nil {
		appErr := mapChargeError(err)
		h.logger.Warn("[payment][handler] charge failed",
			zap.String("code", appErr.Code),
			zap.Int("http_status", appErr.HTTPStatus),
			zap.Error(err),
		)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func mapChargeError(err error) *pkg.AppError {
	var gwErr *entities.GatewayError
	switch {
	case errors.As(err, &gwErr) && gwErr.IsValidation():
		return pkg.NewDomainError(gwErr.Code, gwErr.Message, err, http.StatusUnprocessableEntity)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError(gwErr.Code, gwErr.Message, err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
