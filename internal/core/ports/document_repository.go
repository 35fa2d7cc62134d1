package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// DocumentFilter carries the query parameters for listing documents.
type DocumentFilter struct {
	CaseID string // optional: restrict to one case
	Limit  int
}

// DocumentRepository defines persistence operations for documents.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) (string, error)
	List(ctx context.Context, filter DocumentFilter) ([]*domain.Document, error)
}
