package entities

// TransactionStatus represents the processor outcome of a charge.
//
// The processor only reports approval explicitly; every other response code is
// kept as pending.
type TransactionStatus string

const (
	TransactionStatusPaid    TransactionStatus = "Paid"
	TransactionStatusPending TransactionStatus = "Pending"
)

// Transaction is the generic result of a processed payment.
type Transaction struct {
	Status        TransactionStatus `json:"status"`
	Code          int               `json:"code"`
	TransactionID string            `json:"transaction_id,omitempty"`
	ReferenceID   string            `json:"reference_id,omitempty"`
	Message       string            `json:"message,omitempty"`
}

func (t Transaction) IsPaid() bool {
	return t.Status == TransactionStatusPaid
}
