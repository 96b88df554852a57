package fac

import "fac_gateway/internal/domain/entities"

const (
	SignatureMethod = "SHA1"
	TransactionCode = "8"
)

// AuthorizeRequest is the payload of the Authorize operation.
//
// Members of WCF data contracts are serialized in alphabetical order, which is
// why the Go field order below does not follow the logical grouping.
type AuthorizeRequest struct {
	BillingDetails     BillingDetails     `xml:"http://schemas.firstatlanticcommerce.com/gateway/data BillingDetails"`
	CardDetails        CardDetails        `xml:"http://schemas.firstatlanticcommerce.com/gateway/data CardDetails"`
	TransactionDetails TransactionDetails `xml:"http://schemas.firstatlanticcommerce.com/gateway/data TransactionDetails"`
}

type CardDetails struct {
	CardCVV2       string `xml:"CardCVV2"`
	CardExpiryDate string `xml:"CardExpiryDate"`
	CardNumber     string `xml:"CardNumber"`
	IssueNumber    string `xml:"IssueNumber"`
	StartDate      string `xml:"StartDate"`
}

type TransactionDetails struct {
	AcquirerID       string `xml:"AcquirerId"`
	Amount           string `xml:"Amount"`
	Currency         string `xml:"Currency"`
	CurrencyExponent int    `xml:"CurrencyExponent"`
	IPAddress        string `xml:"IPAddress"`
	MerchantID       string `xml:"MerchantId"`
	OrderNumber      string `xml:"OrderNumber"`
	Signature        string `xml:"Signature"`
	SignatureMethod  string `xml:"SignatureMethod"`
	TransactionCode  string `xml:"TransactionCode"`
}

type BillingDetails struct {
	BillToAddress     string `xml:"BillToAddress"`
	BillToCity        string `xml:"BillToCity"`
	BillToCountry     string `xml:"BillToCountry"`
	BillToCounty      string `xml:"BillToCounty"`
	BillToEmail       string `xml:"BillToEmail"`
	BillToFirstName   string `xml:"BillToFirstName"`
	BillToLastName    string `xml:"BillToLastName"`
	BillToMobile      string `xml:"BillToMobile"`
	BillToZipPostCode string `xml:"BillToZipPostCode"`
}

// BuildAuthorizeRequest assembles the wire payload. It expects an already
// validated payment with a non-nil card and address.
func BuildAuthorizeRequest(publicKey, acquirerID string, p entities.Payment, signature string) AuthorizeRequest {
	card := p.Card
	billing := p.Address

	return AuthorizeRequest{
		CardDetails: CardDetails{
			CardNumber:     card.Number,
			CardExpiryDate: card.Expiry,
			CardCVV2:       card.CVV,
			IssueNumber:    "",
			StartDate:      "",
		},
		TransactionDetails: TransactionDetails{
			AcquirerID:       acquirerID,
			Amount:           PadAmount(p.Amount),
			Currency:         p.CurrencyCode,
			CurrencyExponent: p.CurrencyExponent,
			IPAddress:        "",
			MerchantID:       publicKey,
			OrderNumber:      p.InvoiceID,
			Signature:        signature,
			SignatureMethod:  SignatureMethod,
			TransactionCode:  TransactionCode,
		},
		BillingDetails: BillingDetails{
			BillToFirstName:   billing.FirstName,
			BillToLastName:    billing.LastName,
			BillToEmail:       billing.Email,
			BillToMobile:      billing.Phone,
			BillToAddress:     billing.Address1,
			BillToCity:        billing.City,
			BillToCounty:      billing.State,
			BillToZipPostCode: billing.Zip,
			BillToCountry:     billing.CountryCode,
		},
	}
}
