package fac

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fac_gateway/internal/domain/entities"

	"github.com/hooklift/gowsdl/soap"
)

const authorizeResponseEnvelope = `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
<s:Body>
<AuthorizeResponse xmlns="http://tempuri.org/">
<AuthorizeResult xmlns:a="http://schemas.firstatlanticcommerce.com/gateway/data" xmlns:i="http://www.w3.org/2001/XMLSchema-instance">
<a:AcquirerId>464748</a:AcquirerId>
<a:CreditCardTransactionResults>
<a:AuthCode>123456</a:AuthCode>
<a:ReasonCode>1</a:ReasonCode>
<a:ReasonCodeDescription>Transaction is approved.</a:ReasonCodeDescription>
<a:ReferenceNumber>REF12345</a:ReferenceNumber>
<a:ResponseCode>1</a:ResponseCode>
</a:CreditCardTransactionResults>
<a:MerchantId>public1</a:MerchantId>
<a:OrderNumber>ORD12345</a:OrderNumber>
</AuthorizeResult>
</AuthorizeResponse>
</s:Body>
</s:Envelope>`

const faultEnvelopeXML = `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
<s:Body>
<s:Fault>
<faultcode>s:Client</faultcode>
<faultstring>An error occurred</faultstring>
</s:Fault>
</s:Body>
</s:Envelope>`

func TestSOAPTransport_Authorize(t *testing.T) {
	var gotAction, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.Header.Get("SOAPAction")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = io.WriteString(w, authorizeResponseEnvelope)
	}))
	defer srv.Close()

	transport := NewSOAPTransport(srv.URL, 5*time.Second)
	resp, err := transport.Authorize(context.Background(), BuildAuthorizeRequest("public1", "464748", testPayment(), "sig=="))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gotAction, "IServices/Authorize") {
		t.Fatalf("unexpected SOAPAction %q", gotAction)
	}
	for _, fragment := range []string{"<CardNumber>4111111111111111</CardNumber>", "<SignatureMethod>SHA1</SignatureMethod>", "<Request>"} {
		if !strings.Contains(gotBody, fragment) {
			t.Fatalf("expected %q in request body %s", fragment, gotBody)
		}
	}

	tx, err := MapAuthorizeResponse(resp)
	if err != nil {
		t.Fatalf("unexpected mapping error: %v", err)
	}
	if tx.Code != 1 || tx.TransactionID != "ORD12345" || tx.ReferenceID != "REF12345" || tx.Message != "Transaction is approved." {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
}

func TestSOAPTransport_Fault(t *testing.T) {
	t.Run("fault with status 200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/xml; charset=utf-8")
			_, _ = io.WriteString(w, faultEnvelopeXML)
		}))
		defer srv.Close()

		_, err := NewSOAPTransport(srv.URL, 5*time.Second).Authorize(context.Background(), BuildAuthorizeRequest("public1", "464748", testPayment(), "sig=="))
		if err == nil || err.Error() != "An error occurred" {
			t.Fatalf("fault message not preserved: %v", err)
		}
	})

	t.Run("fault with status 500", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/xml; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, faultEnvelopeXML)
		}))
		defer srv.Close()

		_, err := NewSOAPTransport(srv.URL, 5*time.Second).Authorize(context.Background(), BuildAuthorizeRequest("public1", "464748", testPayment(), "sig=="))
		var fault *soap.SOAPFault
		if !errors.As(err, &fault) {
			t.Fatalf("expected *soap.SOAPFault, got %T: %v", err, err)
		}
		if err.Error() != "An error occurred" || fault.Code != "s:Client" {
			t.Fatalf("unexpected fault: %+v", fault)
		}
	})

	t.Run("error status without fault body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, "<html><body>upstream down</body></html>")
		}))
		defer srv.Close()

		_, err := NewSOAPTransport(srv.URL, 5*time.Second).Authorize(context.Background(), BuildAuthorizeRequest("public1", "464748", testPayment(), "sig=="))
		if err == nil {
			t.Fatalf("expected error")
		}
		if err.Error() != "HTTP Status 503: Service Unavailable" {
			t.Fatalf("unexpected error message: %v", err)
		}
	})
}

func TestGateway_Process_SOAPFaultOverHTTP500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, faultEnvelopeXML)
	}))
	defer srv.Close()

	g := NewGateway("public1", "private1", false, WithTransport(NewSOAPTransport(srv.URL, 5*time.Second)))
	tx, err := g.Process(context.Background(), testPayment())
	if !errors.Is(err, ErrSoapBroke) {
		t.Fatalf("expected ErrSoapBroke, got %v", err)
	}
	var gwErr *entities.GatewayError
	if !errors.As(err, &gwErr) || gwErr.Message != "An error occurred" {
		t.Fatalf("unexpected error: %+v", gwErr)
	}
	if tx != (entities.Transaction{}) {
		t.Fatalf("expected no transaction, got %+v", tx)
	}
}

func TestSOAPTransport_RequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
		_, _ = io.WriteString(w, authorizeResponseEnvelope)
	}))
	defer srv.Close()

	start := time.Now()
	_, err := NewSOAPTransport(srv.URL, 200*time.Millisecond).Authorize(context.Background(), BuildAuthorizeRequest("public1", "464748", testPayment(), "sig=="))
	elapsed := time.Since(start)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if elapsed > 2*time.Second {
		t.Fatalf("request was not bounded by the timeout, took %s", elapsed)
	}
}

func TestServiceURL(t *testing.T) {
	if got := ServiceURL(Sandbox); got != "https://ecm.firstatlanticcommerce.com/PGService/Services.svc" {
		t.Fatalf("unexpected service url %q", got)
	}
	if got := ServiceURL("http://localhost/Services.svc"); got != "http://localhost/Services.svc" {
		t.Fatalf("unexpected service url %q", got)
	}
}
