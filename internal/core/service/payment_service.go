package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/notarium/notary-api/internal/api/metrics"
	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// CheckoutURLs are the redirect targets handed to the gateway when the
// request does not supply its own.
type CheckoutURLs struct {
	Success string
	Cancel  string
}

// PaymentService starts hosted checkout sessions and mirrors each one as a
// pending payment record. Webhook reconciliation is out of scope; the record
// stays pending until something external settles it.
type PaymentService struct {
	gateway  ports.PaymentGateway // nil when no gateway is configured
	payments ports.PaymentRepository
	audit    ports.AuditRecorder
	urls     CheckoutURLs
	logger   zerolog.Logger
}

func NewPaymentService(
	gateway ports.PaymentGateway,
	payments ports.PaymentRepository,
	audit ports.AuditRecorder,
	urls CheckoutURLs,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:  gateway,
		payments: payments,
		audit:    audit,
		urls:     urls,
		logger:   logger,
	}
}

// CreateCheckout creates the gateway session first, then the payment record.
// A gateway failure leaves no record behind.
func (s *PaymentService) CreateCheckout(ctx context.Context, in ports.CreateCheckoutInput) (*ports.CheckoutResult, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("create checkout: %w", domain.ErrGatewayNotConfigured)
	}
	if in.AmountCents < domain.MinAmountCents {
		return nil, fmt.Errorf("create checkout: %w: %d", domain.ErrInvalidAmount, in.AmountCents)
	}

	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}
	successURL := in.SuccessURL
	if successURL == "" {
		successURL = s.urls.Success
	}
	cancelURL := in.CancelURL
	if cancelURL == "" {
		cancelURL = s.urls.Cancel
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, ports.CheckoutSessionInput{
		Service:     in.Service,
		AmountCents: in.AmountCents,
		Currency:    currency,
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
		Metadata: map[string]string{
			"case_id":   in.CaseID,
			"client_id": in.ClientID,
		},
	})
	if err != nil {
		s.logger.Error().Err(err).Str("service", in.Service).Msg("checkout session creation failed")
		return nil, fmt.Errorf("create checkout: %w", domain.ErrGatewayFailure)
	}

	paymentID, err := s.payments.Create(ctx, &domain.Payment{
		ClientID:        in.ClientID,
		CaseID:          in.CaseID,
		Service:         in.Service,
		AmountCents:     in.AmountCents,
		Currency:        currency,
		Status:          domain.PaymentPending,
		StripeSessionID: sess.ID,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		// The gateway session exists but the mirror record does not; the
		// session id in the log is the only handle left for manual repair.
		s.logger.Error().Err(err).Str("session_id", sess.ID).Msg("failed to persist payment record")
		return nil, fmt.Errorf("create checkout: %w", err)
	}

	s.logger.Info().Str("payment_id", paymentID).Str("session_id", sess.ID).Msg("checkout session created")

	if _, err := s.audit.Record(ctx, ports.AuditInput{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    "create",
		Entity:    "payment",
		EntityID:  paymentID,
	}); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues("payment").Inc()
		s.logger.Warn().Err(err).Str("payment_id", paymentID).Msg("failed to write audit record")
	}

	return &ports.CheckoutResult{
		PaymentID:   paymentID,
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}
