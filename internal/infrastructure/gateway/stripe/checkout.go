// Package stripe adapts Stripe Checkout to the PaymentGateway port. Only
// session creation is implemented; webhook reconciliation is out of scope and
// payment records stay pending until settled externally.
package stripe

import (
	"context"
	"fmt"

	stripelib "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/notarium/notary-api/internal/core/ports"
)

// CheckoutClient creates hosted checkout sessions against the Stripe API.
type CheckoutClient struct {
	api *client.API
}

// NewCheckoutClient builds a client bound to the given secret key. The key is
// scoped to this instance, not set as package-global state.
func NewCheckoutClient(secretKey string) *CheckoutClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &CheckoutClient{api: api}
}

// CreateCheckoutSession starts a one-off card payment session.
func (c *CheckoutClient) CreateCheckoutSession(ctx context.Context, in ports.CheckoutSessionInput) (*ports.CheckoutSession, error) {
	params := &stripelib.CheckoutSessionParams{
		Mode:               stripelib.String(string(stripelib.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripelib.StringSlice([]string{"card"}),
		SuccessURL:         stripelib.String(in.SuccessURL),
		CancelURL:          stripelib.String(in.CancelURL),
		LineItems: []*stripelib.CheckoutSessionLineItemParams{
			{
				PriceData: &stripelib.CheckoutSessionLineItemPriceDataParams{
					Currency: stripelib.String(in.Currency),
					ProductData: &stripelib.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripelib.String(in.Service),
					},
					UnitAmount: stripelib.Int64(in.AmountCents),
				},
				Quantity: stripelib.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		if v != "" {
			params.AddMetadata(k, v)
		}
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}

	return &ports.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}
