package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (string, error)
}
