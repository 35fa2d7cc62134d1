package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// TemplateRepository provides the document blueprints available to the
// practice. Injected at construction so the set is explicit, not ambient
// process state.
type TemplateRepository interface {
	List() []domain.Template
	// FindByKey returns domain.ErrTemplateNotFound when no template matches.
	FindByKey(key string) (*domain.Template, error)
}

// RenderTemplateInput names the template and the case supplying its values.
type RenderTemplateInput struct {
	TemplateKey string
	CaseID      string
	ActorRole   string
	ActorID     string
}

// RenderResult carries the persisted document id and the rendered text.
type RenderResult struct {
	DocumentID string
	Content    string
}

// TemplateService lists templates and renders them into stored documents.
type TemplateService interface {
	List(ctx context.Context) []domain.Template
	Render(ctx context.Context, in RenderTemplateInput) (*RenderResult, error)
}
