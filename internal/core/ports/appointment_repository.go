package ports

import (
	"context"
	"time"

	"github.com/notarium/notary-api/internal/core/domain"
)

// AppointmentFilter restricts listings to slots starting in [From, To).
// Zero times mean no bound.
type AppointmentFilter struct {
	From time.Time
	To   time.Time
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (string, error)
	// FindOverlapping returns every non-cancelled appointment whose
	// [start_time, end_time) interval intersects [start, end).
	FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
	// List returns appointments matching filter, ascending by start time.
	List(ctx context.Context, filter AppointmentFilter) ([]*domain.Appointment, error)
	// UpdateStatus returns the matched count (0 when the appointment does not exist).
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (int64, error)
	CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error)
}
