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

// CalendarLock serializes bookings on the shared calendar (Redis). The lock
// must be held across the overlap scan and the insert: without it two
// concurrent bookings for overlapping slots can both pass the scan and both
// commit.
type CalendarLock interface {
	// Acquire blocks briefly for the lock and returns an ownership token,
	// or domain.ErrCalendarBusy when the wait budget is exhausted.
	Acquire(ctx context.Context) (string, error)
	Release(ctx context.Context, token string) error
}

// AppointmentService implements booking with conflict detection, day
// listings, and slot status updates.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	audit  ports.AuditRecorder
	lock   CalendarLock
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, audit ports.AuditRecorder, lock CalendarLock, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, audit: audit, lock: lock, logger: logger}
}

// Book validates the interval, then runs the overlap scan and the insert
// under the calendar lock. Intervals are half-open: a slot starting exactly
// when another ends is not a conflict. Cancelled appointments never block a
// slot.
func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (string, error) {
	// 1. Reject zero-duration and inverted intervals before any I/O.
	if !in.EndTime.After(in.StartTime) {
		return "", fmt.Errorf("book appointment: %w", domain.ErrInvalidTimeRange)
	}

	start := time.Now()

	// 2. Serialize against all other bookings on the calendar.
	token, err := s.lock.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("book appointment: %w", err)
	}
	defer func() {
		if relErr := s.lock.Release(ctx, token); relErr != nil {
			s.logger.Warn().Err(relErr).Msg("failed to release calendar lock")
		}
	}()

	// 3. Scan for overlapping non-cancelled slots.
	overlapping, err := s.repo.FindOverlapping(ctx, in.StartTime, in.EndTime)
	if err != nil {
		metrics.BookingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return "", fmt.Errorf("book appointment: %w", err)
	}
	if len(overlapping) > 0 {
		metrics.BookingConflictsTotal.Inc()
		metrics.BookingDuration.WithLabelValues("conflict").Observe(time.Since(start).Seconds())
		return "", fmt.Errorf("book appointment: %w", domain.ErrSlotConflict)
	}

	// 4. Insert while still holding the lock.
	a := &domain.Appointment{
		ClientID:  in.ClientID,
		Service:   in.Service,
		StartTime: in.StartTime.UTC(),
		EndTime:   in.EndTime.UTC(),
		Location:  in.Location,
		Notes:     in.Notes,
		Status:    domain.AppointmentScheduled,
		CaseID:    in.CaseID,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		metrics.BookingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		s.logger.Error().Err(err).Str("service", in.Service).Msg("failed to create appointment")
		return "", fmt.Errorf("book appointment: %w", err)
	}

	metrics.BookingsTotal.Inc()
	metrics.BookingDuration.WithLabelValues("booked").Observe(time.Since(start).Seconds())
	s.logger.Info().
		Str("appointment_id", id).
		Time("start", in.StartTime).
		Time("end", in.EndTime).
		Msg("appointment booked")

	s.recordAudit(ctx, ports.AuditInput{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    "book",
		Entity:    "appointment",
		EntityID:  id,
	})
	return id, nil
}

// List returns appointments ascending by start time. A non-empty day must be
// a YYYY-MM-DD date and restricts results to [day 00:00, day+1 00:00) UTC.
func (s *AppointmentService) List(ctx context.Context, day string) ([]*domain.Appointment, error) {
	var filter ports.AppointmentFilter
	if day != "" {
		d, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("list appointments: %w: %q", domain.ErrInvalidDay, day)
		}
		filter.From = d
		filter.To = d.AddDate(0, 0, 1)
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return items, nil
}

// UpdateStatus marks a slot completed or cancelled. Cancelling frees the
// interval: the overlap scan ignores cancelled appointments.
func (s *AppointmentService) UpdateStatus(ctx context.Context, in ports.UpdateAppointmentStatusInput) error {
	status := domain.AppointmentStatus(in.Status)
	if !status.Valid() {
		return fmt.Errorf("update appointment: %w: %q", domain.ErrInvalidStatus, in.Status)
	}

	matched, err := s.repo.UpdateStatus(ctx, in.AppointmentID, status)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if matched == 0 {
		return fmt.Errorf("update appointment: %w", domain.ErrAppointmentNotFound)
	}

	s.logger.Info().Str("appointment_id", in.AppointmentID).Str("status", in.Status).Msg("appointment status updated")

	s.recordAudit(ctx, ports.AuditInput{
		ActorRole: in.ActorRole,
		ActorID:   in.ActorID,
		Action:    "update_status",
		Entity:    "appointment",
		EntityID:  in.AppointmentID,
		Details:   map[string]string{"status": in.Status},
	})
	return nil
}

func (s *AppointmentService) recordAudit(ctx context.Context, in ports.AuditInput) {
	if _, err := s.audit.Record(ctx, in); err != nil {
		metrics.AuditWriteFailuresTotal.WithLabelValues(in.Entity).Inc()
		s.logger.Warn().Err(err).
			Str("action", in.Action).
			Str("entity_id", in.EntityID).
			Msg("failed to write audit record")
	}
}
