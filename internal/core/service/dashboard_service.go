package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

const recentActivityLimit = 10

// DashboardService aggregates the office landing-page rollup. The counts run
// as independent queries; the snapshot is a few queries wide, which the
// dashboard tolerates.
type DashboardService struct {
	appointments ports.AppointmentRepository
	cases        ports.CaseRepository
	audit        ports.AuditRepository
	logger       zerolog.Logger
}

func NewDashboardService(
	appointments ports.AppointmentRepository,
	cases ports.CaseRepository,
	audit ports.AuditRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		appointments: appointments,
		cases:        cases,
		audit:        audit,
		logger:       logger,
	}
}

// Summary returns today's appointment count, open and completed case counts,
// and the ten most recent audit entries.
func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	apptToday, err := s.appointments.CountStartingBetween(ctx, today, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count appointments: %w", err)
	}

	openCases, err := s.cases.CountByStatuses(ctx, domain.OpenCaseStatuses())
	if err != nil {
		return nil, fmt.Errorf("dashboard: count open cases: %w", err)
	}

	completedCases, err := s.cases.CountByStatuses(ctx, []domain.CaseStatus{domain.CaseStatusCompleted})
	if err != nil {
		return nil, fmt.Errorf("dashboard: count completed cases: %w", err)
	}

	recent, err := s.audit.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: recent activity: %w", err)
	}

	return &ports.DashboardSummary{
		AppointmentsToday: apptToday,
		OpenCases:         openCases,
		CompletedCases:    completedCases,
		RecentActivity:    recent,
	}, nil
}
