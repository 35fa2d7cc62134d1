package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/notarium/notary-api/internal/api/metrics"
	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// TemplateService lists document templates and renders them into stored
// documents. Rendering is literal {{key}} substitution, nothing more.
type TemplateService struct {
	templates ports.TemplateRepository
	cases     ports.CaseRepository
	clients   ports.ClientRepository
	documents ports.DocumentRepository
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

func NewTemplateService(
	templates ports.TemplateRepository,
	cases ports.CaseRepository,
	clients ports.ClientRepository,
	documents ports.DocumentRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *TemplateService {
	return &TemplateService{
		templates: templates,
		cases:     cases,
		clients:   clients,
		documents: documents,
		audit:     audit,
		logger:    logger,
	}
}

// List returns the templates available to the practice.
func (s *TemplateService) List(_ context.Context) []domain.Template {
	return s.templates.List()
}

// Render fills the template with the case's client values and persists the
// result as a document on the case.
func (s *TemplateService) Render(ctx context.Context, in ports.RenderTemplateInput) (*ports.RenderResult, error) {
	tpl, err := s.templates.FindByKey(in.TemplateKey)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	c, err := s.cases.FindByID(ctx, in.CaseID)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	// The case may predate its client record or reference a removed one;
	// render with empty values rather than failing the whole request.
	var client *domain.Client
	if c.ClientID != "" {
		client, err = s.clients.FindByID(ctx, c.ClientID)
		if err != nil && !errors.Is(err, domain.ErrClientNotFound) {
			return nil, fmt.Errorf("render template: %w", err)
		}
	}

	vars := map[string]string{
		"case_title": c.Title,
		"date":       time.Now().UTC().Format("2006-01-02"),
	}
	if client != nil {
		vars["client_first_name"] = client.FirstName
		vars["client_last_name"] = client.LastName
		vars["client_address"] = client.Address
	} else {
		vars["client_first_name"] = ""
		vars["client_last_name"] = ""
		vars["client_address"] = ""
	}

	content := substitute(tpl.Content, vars)

	docID, err := s.documents.Create(ctx, &domain.Document{
		CaseID:      in.CaseID,
		Name:        tpl.Name,
		TemplateKey: tpl.Key,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("template", tpl.Key).Msg("failed to persist rendered document")
		return nil, fmt.Errorf("render template: %w", err)
	}

	s.logger.Info().Str("template", tpl.Key).Str("document_id", docID).Msg("template rendered")

	if _, err := s.audit.Record(ctx, ports.AuditInput{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    "render",
		Entity:    "document",
		EntityID:  docID,
		Details:   map[string]string{"template": tpl.Key},
	}); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues("document").Inc()
		s.logger.Warn().Err(err).Str("document_id", docID).Msg("failed to write audit record")
	}

	return &ports.RenderResult{DocumentID: docID, Content: content}, nil
}

// substitute replaces each literal {{key}} marker with its value.
func substitute(text string, vars map[string]string) string {
	for k, v := range vars {
		text = strings.ReplaceAll(text, "{{"+k+"}}", v)
	}
	return text
}
