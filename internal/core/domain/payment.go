package domain

import (
	"errors"
	"time"
)

// PaymentStatus tracks the checkout lifecycle.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// MinAmountCents is the smallest chargeable amount, in minor currency units.
const MinAmountCents = 50

var ErrInvalidAmount = errors.New("amount below minimum")
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")
var ErrGatewayFailure = errors.New("payment gateway error")

// Payment references a checkout session created at the gateway. The gateway
// owns the money movement; this record only mirrors its state.
type Payment struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	ClientID        string        `json:"client_id,omitempty" bson:"client_id,omitempty"`
	CaseID          string        `json:"case_id,omitempty" bson:"case_id,omitempty"`
	Service         string        `json:"service" bson:"service"`
	AmountCents     int64         `json:"amount_cents" bson:"amount_cents"`
	Currency        string        `json:"currency" bson:"currency"`
	Status          PaymentStatus `json:"status" bson:"status"`
	StripeSessionID string        `json:"stripe_session_id,omitempty" bson:"stripe_session_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
}
