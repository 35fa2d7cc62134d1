// Package templates provides the in-memory template repository. The set is
// passed in at construction so callers control it explicitly; Default returns
// the blueprints the practice ships with.
package templates

import (
	"sort"

	"github.com/notarium/notary-api/internal/core/domain"
)

// Repository serves document templates keyed by their identifier.
type Repository struct {
	byKey map[string]domain.Template
}

// NewRepository builds a repository over the given templates.
func NewRepository(tpls []domain.Template) *Repository {
	byKey := make(map[string]domain.Template, len(tpls))
	for _, t := range tpls {
		byKey[t.Key] = t
	}
	return &Repository{byKey: byKey}
}

// List returns all templates, ordered by key for stable output.
func (r *Repository) List() []domain.Template {
	out := make([]domain.Template, 0, len(r.byKey))
	for _, t := range r.byKey {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// FindByKey returns the template or domain.ErrTemplateNotFound.
func (r *Repository) FindByKey(key string) (*domain.Template, error) {
	t, ok := r.byKey[key]
	if !ok {
		return nil, domain.ErrTemplateNotFound
	}
	return &t, nil
}

// Default returns the built-in template set.
func Default() []domain.Template {
	return []domain.Template{
		{
			Key:  "power_of_attorney",
			Name: "Power of Attorney",
			Content: "POWER OF ATTORNEY\n\n" +
				"Principal: {{client_first_name}} {{client_last_name}}\n" +
				"Address: {{client_address}}\n" +
				"Date: {{date}}\n" +
				"Case: {{case_title}}\n\n" +
				"I hereby appoint ... (sample content)",
		},
		{
			Key:  "affidavit",
			Name: "Affidavit",
			Content: "AFFIDAVIT\n\n" +
				"Affiant: {{client_first_name}} {{client_last_name}}\n" +
				"Statement: ... (sample content)\n" +
				"Date: {{date}}",
		},
	}
}
