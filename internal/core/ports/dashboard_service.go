package ports

import (
	"context"

	"github.com/notarium/notary-api/internal/core/domain"
)

// DashboardSummary is the read-only rollup shown on the office landing page.
// Counts are computed with independent queries and may be a few queries apart
// in time; the dashboard tolerates that staleness.
type DashboardSummary struct {
	AppointmentsToday int64
	OpenCases         int64
	CompletedCases    int64
	RecentActivity    []*domain.AuditEntry
}

// DashboardService aggregates counts and recent audit activity.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
