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

// ClientService handles client intake and lookup.
type ClientService struct {
	repo   ports.ClientRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, audit: audit, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, in ports.CreateClientInput) (string, error) {
	c := &domain.Client{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		Country:   in.Country,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create client")
		return "", fmt.Errorf("create client: %w", err)
	}

	s.logger.Info().Str("client_id", id).Msg("client created")

	if _, err := s.audit.Record(ctx, ports.AuditInput{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    "create",
		Entity:    "client",
		EntityID:  id,
	}); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues("client").Inc()
		s.logger.Warn().Err(err).Str("client_id", id).Msg("failed to write audit record")
	}
	return id, nil
}

func (s *ClientService) List(ctx context.Context, filter ports.ClientFilter) ([]*domain.Client, error) {
	if filter.Limit <= 0 || filter.Limit > 50 {
		filter.Limit = 50
	}
	clients, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}
