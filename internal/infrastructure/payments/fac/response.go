package fac

import (
	"encoding/xml"
	"strconv"
	"strings"

	"fac_gateway/internal/domain/entities"
)

// AuthorizeResponse mirrors the Authorize result. Every member is a pointer so
// the mapper can tell a missing element from an empty one.
type AuthorizeResponse struct {
	XMLName         xml.Name         `xml:"http://tempuri.org/ AuthorizeResponse"`
	AuthorizeResult *AuthorizeResult `xml:"AuthorizeResult"`
}

type AuthorizeResult struct {
	AcquirerID                   *string                       `xml:"AcquirerId"`
	MerchantID                   *string                       `xml:"MerchantId"`
	OrderNumber                  *string                       `xml:"OrderNumber"`
	Signature                    *string                       `xml:"Signature"`
	CreditCardTransactionResults *CreditCardTransactionResults `xml:"CreditCardTransactionResults"`
}

type CreditCardTransactionResults struct {
	AuthCode              *string `xml:"AuthCode"`
	AVSResult             *string `xml:"AVSResult"`
	CVV2Result            *string `xml:"CVV2Result"`
	OriginalResponseCode  *string `xml:"OriginalResponseCode"`
	PaddedCardNumber      *string `xml:"PaddedCardNumber"`
	ReasonCode            *string `xml:"ReasonCode"`
	ReasonCodeDescription *string `xml:"ReasonCodeDescription"`
	ReferenceNumber       *string `xml:"ReferenceNumber"`
	ResponseCode          *string `xml:"ResponseCode"`
}

const approvedResponseCode = 1

// MapAuthorizeResponse converts the processor response into a Transaction.
// Only the response code is mandatory; code 1 is Paid, anything else Pending.
func MapAuthorizeResponse(resp *AuthorizeResponse) (entities.Transaction, error) {
	if resp == nil || resp.AuthorizeResult == nil {
		return entities.Transaction{}, ErrInvalidResponse
	}
	result := resp.AuthorizeResult
	cc := result.CreditCardTransactionResults
	if cc == nil || cc.ResponseCode == nil {
		return entities.Transaction{}, ErrInvalidResponse
	}

	code, err := strconv.Atoi(strings.TrimSpace(*cc.ResponseCode))
	if err != nil {
		return entities.Transaction{}, ErrInvalidResponse
	}

	status := entities.TransactionStatusPending
	if code == approvedResponseCode {
		status = entities.TransactionStatusPaid
	}

	tx := entities.Transaction{Status: status, Code: code}
	if result.OrderNumber != nil {
		tx.TransactionID = *result.OrderNumber
	}
	if cc.ReferenceNumber != nil {
		tx.ReferenceID = *cc.ReferenceNumber
	}
	if cc.ReasonCodeDescription != nil {
		tx.Message = *cc.ReasonCodeDescription
	}
	return tx, nil
}
