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

// CaseService implements the case workflow: intake with client existence
// check, status transitions, and the audit record both mutations owe.
type CaseService struct {
	repo    ports.CaseRepository
	clients ports.ClientRepository
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, clients ports.ClientRepository, audit ports.AuditRecorder, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, clients: clients, audit: audit, logger: logger}
}

// Create opens a new case with status New. When a client id is supplied it
// must reference an existing client; nothing is persisted otherwise.
func (s *CaseService) Create(ctx context.Context, in ports.CreateCaseInput) (string, error) {
	if in.ClientID != "" {
		if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
			return "", fmt.Errorf("create case: %w", err)
		}
	}

	now := time.Now().UTC()
	c := &domain.Case{
		ClientID:    in.ClientID,
		Title:       in.Title,
		Type:        in.Type,
		Status:      domain.CaseStatusNew,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		s.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create case")
		return "", fmt.Errorf("create case: %w", err)
	}

	metrics.CasesCreatedTotal.WithLabelValues(in.Type).Inc()
	s.logger.Info().Str("case_id", id).Str("client_id", in.ClientID).Msg("case created")

	s.recordAudit(ctx, ports.AuditInput{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    "create",
		Entity:    "case",
		EntityID:  id,
	})
	return id, nil
}

// UpdateStatus moves a case to any valid status. Every valid status is
// reachable from every other; the small office relies on manual overrides.
func (s *CaseService) UpdateStatus(ctx context.Context, in ports.UpdateCaseStatusInput) error {
	status := domain.CaseStatus(in.Status)
	if !status.Valid() {
		return fmt.Errorf("update status: %w: %q", domain.ErrInvalidStatus, in.Status)
	}

	matched, err := s.repo.UpdateStatus(ctx, in.CaseID, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if matched == 0 {
		return fmt.Errorf("update status: %w", domain.ErrCaseNotFound)
	}

	metrics.CaseTransitionsTotal.WithLabelValues(in.Status).Inc()
	s.logger.Info().Str("case_id", in.CaseID).Str("status", in.Status).Msg("case status updated")

	s.recordAudit(ctx, ports.AuditInput{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    "update_status",
		Entity:    "case",
		EntityID:  in.CaseID,
		Details:   map[string]string{"status": in.Status},
	})
	return nil
}

// List returns cases, optionally filtered by status.
func (s *CaseService) List(ctx context.Context, in ports.ListCasesInput) ([]*domain.Case, error) {
	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	cases, err := s.repo.List(ctx, ports.CaseFilter{Status: in.Status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

// recordAudit is best-effort: the case mutation already committed, so a
// failed audit write is logged and counted, never propagated.
func (s *CaseService) recordAudit(ctx context.Context, in ports.AuditInput) {
	if _, err := s.audit.Record(ctx, in); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues(in.Entity).Inc()
		s.logger.Warn().Err(err).
			Str("action", in.Action).
			Str("entity_id", in.EntityID).
			Msg("failed to write audit record")
	}
}
