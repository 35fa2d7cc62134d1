package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/notarium/notary-api/internal/api/metrics"
	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// DocumentService records documents against cases. Actual file storage and
// OCR live outside this service.
type DocumentService struct {
	repo   ports.DocumentRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, audit ports.AuditRecorder, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, audit: audit, logger: logger}
}

func (s *DocumentService) Create(ctx context.Context, in ports.CreateDocumentInput) (string, error) {
	d := &domain.Document{
		CaseID:      in.CaseID,
		Name:        in.Name,
		TemplateKey: in.TemplateKey,
		Content:     in.Content,
		FileURL:     in.FileURL,
		Tags:        in.Tags,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		s.logger.Error().Err(err).Str("case_id", in.CaseID).Msg("failed to create document")
		return "", fmt.Errorf("create document: %w", err)
	}

	s.logger.Info().Str("document_id", id).Str("case_id", in.CaseID).Msg("document created")

	if _, err := s.audit.Record(ctx, ports.AuditInput{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    "create",
		Entity:    "document",
		EntityID:  id,
	}); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues("document").Inc()
		s.logger.Warn().Err(err).Str("document_id", id).Msg("failed to write audit record")
	}
	return id, nil
}

func (s *DocumentService) List(ctx context.Context, filter ports.DocumentFilter) ([]*domain.Document, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 100
	}
	docs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
