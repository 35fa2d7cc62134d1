package ports

import (
	"context"
	"time"

	"github.com/notarium/notary-api/internal/core/domain"
)

// BookAppointmentInput carries a public booking request.
type BookAppointmentInput struct {
	ClientID  string // optional
	Service   string
	StartTime time.Time
	EndTime   time.Time
	Location  string
	Notes     string
	CaseID    string // optional
	ActorRole string
	ActorID   string
}

// UpdateAppointmentStatusInput marks a slot completed or cancelled.
type UpdateAppointmentStatusInput struct {
	AppointmentID string
	Status        string
	ActorRole     string
	ActorID       string
}

// AppointmentService is the scheduling workflow component. Book runs the
// conflict scan and the insert as one atomic unit with respect to all other
// bookings on the shared calendar.
type AppointmentService interface {
	Book(ctx context.Context, in BookAppointmentInput) (string, error)
	// List returns appointments ascending by start time; day, when non-empty,
	// is a YYYY-MM-DD calendar date restricting results to [day, day+1) UTC.
	List(ctx context.Context, day string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, in UpdateAppointmentStatusInput) error
}
