package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// ClientFilter carries the query parameters for listing clients.
type ClientFilter struct {
	Search string // optional: case-insensitive partial match on first_name, last_name or email
	Limit  int    // max rows (capped at 50 by the service when <= 0)
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (string, error)
	// FindByID returns domain.ErrClientNotFound when no client matches.
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
}
