package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// AuditService is the audit recorder: it appends immutable action records and
// serves the recent-activity query. Write-once, read-via-query-only.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Record appends one entry. It fails only when the underlying store is
// unavailable; callers decide whether that failure matters (for business
// mutations it is logged and counted, never used to roll back).
func (s *AuditService) Record(ctx context.Context, in ports.AuditInput) (string, error) {
	entry := &domain.AuditEntry{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    in.Action,
		Entity:    in.Entity,
		EntityID:  in.EntityID,
		Details:   in.Details,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("record audit: %w", err)
	}
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent audit: %w", err)
	}
	return entries, nil
}
