package fac

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hooklift/gowsdl/soap"
)

const authorizeAction = "http://tempuri.org/IServices/Authorize"

type authorizeCall struct {
	XMLName xml.Name         `xml:"http://tempuri.org/ Authorize"`
	Request AuthorizeRequest `xml:"Request"`
}

// faultEnvelope reads the fault out of an error response body. WCF answers
// faults with HTTP 500, which the soap client reports without decoding.
type faultEnvelope struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    struct {
		Fault *soap.SOAPFault `xml:"http://schemas.xmlsoap.org/soap/envelope/ Fault"`
	} `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

// SOAPTransport calls the PGService over SOAP 1.1. Each call is a plain
// synchronous request/response; nothing is cached between calls.
type SOAPTransport struct {
	client *soap.Client
}

var _ Transport = (*SOAPTransport)(nil)

// NewSOAPTransport binds a client to serviceURL. A positive timeout bounds both
// the dial and the whole request.
func NewSOAPTransport(serviceURL string, timeout time.Duration) *SOAPTransport {
	var opts []soap.Option
	if timeout > 0 {
		opts = append(opts, soap.WithTimeout(timeout), soap.WithRequestTimeout(timeout))
	}
	return &SOAPTransport{client: soap.NewClient(serviceURL, opts...)}
}

func (t *SOAPTransport) Authorize(ctx context.Context, req AuthorizeRequest) (*AuthorizeResponse, error) {
	resp := &AuthorizeResponse{}
	if err := t.client.CallContext(ctx, authorizeAction, &authorizeCall{Request: req}, resp); err != nil {
		return nil, unwrapHTTPFault(err)
	}
	return resp, nil
}

// unwrapHTTPFault turns an HTTP error status into the SOAP fault it carries.
// Bodies without a fault are reduced to the status line so the remote payload
// never surfaces in the error message.
func unwrapHTTPFault(err error) error {
	var httpErr *soap.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	var env faultEnvelope
	if xml.Unmarshal(httpErr.ResponseBody, &env) == nil && env.Body.Fault != nil && env.Body.Fault.String != "" {
		return env.Body.Fault
	}
	return fmt.Errorf("HTTP Status %d: %s", httpErr.StatusCode, http.StatusText(httpErr.StatusCode))
}

// ServiceURL strips the WSDL query from an endpoint, leaving the address the
// SOAP envelope is posted to.
func ServiceURL(endpoint string) string {
	for _, suffix := range []string{"?wsdl", "?WSDL"} {
		if strings.HasSuffix(endpoint, suffix) {
			return strings.TrimSuffix(endpoint, suffix)
		}
	}
	return endpoint
}
