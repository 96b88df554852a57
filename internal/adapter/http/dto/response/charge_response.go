package response

import "fac_gateway/internal/domain/entities"

type ChargeResponse struct {
	Status        string `json:"status"`
	Code          int    `json:"code"`
	TransactionID string `json:"transaction_id,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
	Message       string `json:"message,omitempty"`
}

func FromTransaction(t entities.Transaction) ChargeResponse {
	return ChargeResponse{
		Status:        string(t.Status),
		Code:          t.Code,
		TransactionID: t.TransactionID,
		ReferenceID:   t.ReferenceID,
		Message:       t.Message,
	}
}
