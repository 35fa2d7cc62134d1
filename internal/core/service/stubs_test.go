package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubAuditRecorder struct {
	records   []ports.AuditInput
	recordErr error
}

func (a *stubAuditRecorder) Record(_ context.Context, in ports.AuditInput) (string, error) {
	if a.recordErr != nil {
		return "", a.recordErr
	}
	a.records = append(a.records, in)
	return "audit_" + strconv.Itoa(len(a.records)), nil
}

type stubClientRepo struct {
	byID      map[string]*domain.Client
	createErr error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	id := "client_" + strconv.Itoa(len(r.byID)+1)
	clone := *c
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubClientRepo) List(_ context.Context, f ports.ClientFilter) ([]*domain.Client, error) {
	var matched []*domain.Client
	for _, c := range r.byID {
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(c.FirstName), s) &&
				!strings.Contains(strings.ToLower(c.LastName), s) &&
				!strings.Contains(strings.ToLower(c.Email), s) {
				continue
			}
		}
		clone := *c
		matched = append(matched, &clone)
		if f.Limit > 0 && len(matched) >= f.Limit {
			break
		}
	}
	return matched, nil
}

type stubCaseRepo struct {
	byID       map[string]*domain.Case
	nextID     int
	createErr  error
	updateErr  error
	countByKey map[string]int64 // keyed by joined status list, for dashboard tests
}

func newStubCaseRepo() *stubCaseRepo {
	return &stubCaseRepo{byID: make(map[string]*domain.Case)}
}

func (r *stubCaseRepo) Create(_ context.Context, c *domain.Case) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	r.nextID++
	id := "case_" + strconv.Itoa(r.nextID)
	clone := *c
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubCaseRepo) FindByID(_ context.Context, id string) (*domain.Case, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCaseRepo) List(_ context.Context, f ports.CaseFilter) ([]*domain.Case, error) {
	var matched []*domain.Case
	for _, c := range r.byID {
		if f.Status != "" && string(c.Status) != f.Status {
			continue
		}
		clone := *c
		matched = append(matched, &clone)
		if f.Limit > 0 && len(matched) >= f.Limit {
			break
		}
	}
	return matched, nil
}

func (r *stubCaseRepo) UpdateStatus(_ context.Context, id string, status domain.CaseStatus, updatedAt time.Time) (int64, error) {
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	c, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	c.Status = status
	c.UpdatedAt = updatedAt
	return 1, nil
}

func (r *stubCaseRepo) CountByStatuses(_ context.Context, statuses []domain.CaseStatus) (int64, error) {
	if r.countByKey != nil {
		parts := make([]string, len(statuses))
		for i, s := range statuses {
			parts[i] = string(s)
		}
		return r.countByKey[strings.Join(parts, ",")], nil
	}
	var n int64
	for _, c := range r.byID {
		for _, s := range statuses {
			if c.Status == s {
				n++
			}
		}
	}
	return n, nil
}

type stubAppointmentRepo struct {
	byID      map[string]*domain.Appointment
	nextID    int
	createErr error
	listErr   error
	lastList  ports.AppointmentFilter
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{byID: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	r.nextID++
	id := "appt_" + strconv.Itoa(r.nextID)
	clone := *a
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

// FindOverlapping mirrors the real Mongo query: half-open interval
// intersection, cancelled slots excluded.
func (r *stubAppointmentRepo) FindOverlapping(_ context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	var matched []*domain.Appointment
	for _, a := range r.byID {
		if a.Status == domain.AppointmentCancelled {
			continue
		}
		if domain.Overlaps(a.StartTime, a.EndTime, start, end) {
			clone := *a
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (r *stubAppointmentRepo) List(_ context.Context, f ports.AppointmentFilter) ([]*domain.Appointment, error) {
	r.lastList = f
	if r.listErr != nil {
		return nil, r.listErr
	}
	var matched []*domain.Appointment
	for _, a := range r.byID {
		if !f.From.IsZero() && a.StartTime.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !a.StartTime.Before(f.To) {
			continue
		}
		clone := *a
		matched = append(matched, &clone)
	}
	return matched, nil
}

func (r *stubAppointmentRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (int64, error) {
	a, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	a.Status = status
	return 1, nil
}

func (r *stubAppointmentRepo) CountStartingBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, a := range r.byID {
		if !a.StartTime.Before(from) && a.StartTime.Before(to) {
			n++
		}
	}
	return n, nil
}

type stubAuditRepo struct {
	entries   []*domain.AuditEntry
	insertErr error
	lastLimit int
}

func (r *stubAuditRepo) Insert(_ context.Context, e *domain.AuditEntry) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	clone := *e
	clone.ID = "audit_" + strconv.Itoa(len(r.entries)+1)
	r.entries = append(r.entries, &clone)
	return clone.ID, nil
}

func (r *stubAuditRepo) FindRecent(_ context.Context, limit int) ([]*domain.AuditEntry, error) {
	r.lastLimit = limit
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	// Newest first.
	out := make([]*domain.AuditEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.entries[i]
		out = append(out, &clone)
	}
	return out, nil
}

type stubDocumentRepo struct {
	docs      []*domain.Document
	createErr error
}

func (r *stubDocumentRepo) Create(_ context.Context, d *domain.Document) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	clone := *d
	clone.ID = "doc_" + strconv.Itoa(len(r.docs)+1)
	r.docs = append(r.docs, &clone)
	return clone.ID, nil
}

func (r *stubDocumentRepo) List(_ context.Context, f ports.DocumentFilter) ([]*domain.Document, error) {
	var matched []*domain.Document
	for _, d := range r.docs {
		if f.CaseID != "" && d.CaseID != f.CaseID {
			continue
		}
		clone := *d
		matched = append(matched, &clone)
	}
	return matched, nil
}

// stubCalendarLock hands out tokens immediately and counts usage.
type stubCalendarLock struct {
	acquireErr error
	acquired   int
	released   int
	lastToken  string
}

func (l *stubCalendarLock) Acquire(_ context.Context) (string, error) {
	if l.acquireErr != nil {
		return "", l.acquireErr
	}
	l.acquired++
	l.lastToken = "token_" + strconv.Itoa(l.acquired)
	return l.lastToken, nil
}

func (l *stubCalendarLock) Release(_ context.Context, token string) error {
	if token == l.lastToken {
		l.released++
	}
	return nil
}
