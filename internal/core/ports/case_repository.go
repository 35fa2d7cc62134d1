package ports

import (
	"context"
	"time"

	"github.com/notarium/notary-api/internal/core/domain"
)

// CaseFilter carries the query parameters for listing cases.
type CaseFilter struct {
	Status string // optional: exact status match
	Limit  int    // max rows (capped at 100 by the service when <= 0)
}

// CaseRepository defines persistence operations for cases.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) (string, error)
	// FindByID returns domain.ErrCaseNotFound when no case matches.
	FindByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context, filter CaseFilter) ([]*domain.Case, error)
	// UpdateStatus sets status and updated_at on the single matching record
	// and returns the matched count (0 when the case does not exist).
	UpdateStatus(ctx context.Context, id string, status domain.CaseStatus, updatedAt time.Time) (int64, error)
	CountByStatuses(ctx context.Context, statuses []domain.CaseStatus) (int64, error)
}
