package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// AuthService issues tokens carrying the principal-to-role mapping every
// protected operation relies on.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
