package fac

import (
	"context"
	"time"

	"fac_gateway/internal/domain/entities"
	"fac_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	Production = "https://marlin.firstatlanticcommerce.com/PGService/Services.svc?wsdl"
	Sandbox    = "https://ecm.firstatlanticcommerce.com/PGService/Services.svc?wsdl"

	// DefaultAcquirerID is the acquirer FAC assigns to every merchant.
	DefaultAcquirerID = "464748"
)

// Transport performs the Authorize remote call. Implementations return either
// a raw response (possibly nil) or an error describing the transport fault.
type Transport interface {
	Authorize(ctx context.Context, req AuthorizeRequest) (*AuthorizeResponse, error)
}

// Gateway charges cards through the First Atlantic Commerce PGService.
//
// A Gateway is configured once and then used for a payment attempt; it holds no
// locks, so callers sharing one across goroutines must not call setters concurrently.
type Gateway struct {
	publicKey   string
	privateKey  string
	acquirerID  string
	live        bool
	transport   Transport
	httpTimeout time.Duration
	logger      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*Gateway)(nil)

type Option func(*Gateway)

// WithTransport injects the remote-call transport, bypassing the SOAP client.
func WithTransport(t Transport) Option {
	return func(g *Gateway) { g.transport = t }
}

func WithAcquirerID(acquirerID string) Option {
	return func(g *Gateway) { g.acquirerID = acquirerID }
}

// WithHTTPTimeout bounds each request of the default SOAP transport end to end.
// Zero leaves the client defaults.
func WithHTTPTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.httpTimeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

func NewGateway(publicKey, privateKey string, live bool, opts ...Option) *Gateway {
	g := &Gateway{
		publicKey:  publicKey,
		privateKey: privateKey,
		acquirerID: DefaultAcquirerID,
		live:       live,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) PublicKey() string { return g.publicKey }

func (g *Gateway) SetPublicKey(publicKey string) *Gateway {
	g.publicKey = publicKey
	return g
}

func (g *Gateway) PrivateKey() string { return g.privateKey }

func (g *Gateway) SetPrivateKey(privateKey string) *Gateway {
	g.privateKey = privateKey
	return g
}

func (g *Gateway) AcquirerID() string { return g.acquirerID }

func (g *Gateway) SetAcquirerID(acquirerID string) *Gateway {
	g.acquirerID = acquirerID
	return g
}

func (g *Gateway) IsLive() bool { return g.live }

func (g *Gateway) SetLive(live bool) *Gateway {
	g.live = live
	return g
}

func (g *Gateway) Transport() Transport { return g.transport }

func (g *Gateway) SetTransport(t Transport) *Gateway {
	g.transport = t
	return g
}

// Endpoint returns the WSDL location selected by the live flag.
func (g *Gateway) Endpoint() string {
	if g.live {
		return Production
	}
	return Sandbox
}

// Process validates the payment, signs and submits it with a single Authorize
// call and maps the outcome. Validation failures never reach the transport.
func (g *Gateway) Process(ctx context.Context, p entities.Payment) (entities.Transaction, error) {
	if err := g.validate(p); err != nil {
		g.logger.Warn("[payment][gateway] validation failed",
			zap.String("invoice_id", p.InvoiceID),
			zap.Error(err),
		)
		return entities.Transaction{}, err
	}

	signature := Signature(g.privateKey, g.publicKey, g.acquirerID, p.InvoiceID, p.Amount, p.CurrencyCode)
	req := BuildAuthorizeRequest(g.publicKey, g.acquirerID, p, signature)

	transport := g.transport
	if transport == nil {
		transport = NewSOAPTransport(ServiceURL(g.Endpoint()), g.httpTimeout)
	}

	g.logger.Info("[payment][gateway] authorize start",
		zap.String("invoice_id", p.InvoiceID),
		zap.String("amount", req.TransactionDetails.Amount),
		zap.String("currency", p.CurrencyCode),
		zap.String("card", p.Card.Masked()),
		zap.Bool("live", g.live),
	)

	resp, err := transport.Authorize(ctx, req)
	if err != nil {
		g.logger.Error("[payment][gateway] authorize call failed",
			zap.String("invoice_id", p.InvoiceID),
			zap.Error(err),
		)
		return entities.Transaction{}, newSoapBrokeError(err.Error())
	}

	tx, err := MapAuthorizeResponse(resp)
	if err != nil {
		g.logger.Error("[payment][gateway] invalid authorize response",
			zap.String("invoice_id", p.InvoiceID),
			zap.Error(err),
		)
		return entities.Transaction{}, err
	}

	g.logger.Info("[payment][gateway] authorize done",
		zap.String("invoice_id", p.InvoiceID),
		zap.Int("code", tx.Code),
		zap.String("status", string(tx.Status)),
		zap.String("reference_id", tx.ReferenceID),
	)
	return tx, nil
}

func (g *Gateway) validate(p entities.Payment) error {
	if g.publicKey == "" {
		return ErrInvalidPublicKey
	}
	if g.privateKey == "" {
		return ErrInvalidPrivateKey
	}
	if g.acquirerID == "" {
		return ErrInvalidAcquirerID
	}
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if p.Card == nil {
		return ErrInvalidCard
	}
	if p.Address == nil {
		return ErrInvalidAddress
	}
	return nil
}
