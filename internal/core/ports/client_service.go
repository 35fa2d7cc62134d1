package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// CreateClientInput carries the intake form for a new client.
type CreateClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
	Notes     string
	ActorRole string
	ActorID   string
}

// ClientService handles client intake and lookup.
type ClientService interface {
	Create(ctx context.Context, in CreateClientInput) (string, error)
	List(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
}
