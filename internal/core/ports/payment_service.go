package ports

import "context"

// CheckoutSessionInput is passed to the external payment gateway.
type CheckoutSessionInput struct {
	Service     string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CheckoutSession is the gateway's handle for a started payment.
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentGateway abstracts the hosted checkout provider (Stripe).
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error)
}

// CreateCheckoutInput carries a checkout request from the transport layer.
type CreateCheckoutInput struct {
	Service     string
	AmountCents int64
	Currency    string
	CaseID      string
	ClientID    string
	SuccessURL  string
	CancelURL   string
	ActorRole   string
	ActorID     string
}

// CheckoutResult is returned after the session and payment record exist.
type CheckoutResult struct {
	PaymentID   string
	SessionID   string
	CheckoutURL string
}

// PaymentService creates checkout sessions and mirrors them as payment records.
type PaymentService interface {
	CreateCheckout(ctx context.Context, in CreateCheckoutInput) (*CheckoutResult, error)
}
