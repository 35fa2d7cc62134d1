package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// CreateDocumentInput records a document against a case.
type CreateDocumentInput struct {
	CaseID      string
	Name        string
	TemplateKey string
	Content     string
	FileURL     string
	Tags        []string
	ActorRole   string
	ActorID     string
}

// DocumentService handles document records (file storage itself is out of scope).
type DocumentService interface {
	Create(ctx context.Context, in CreateDocumentInput) (string, error)
	List(ctx context.Context, filter DocumentFilter) ([]*domain.Document, error)
}
