package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

type stubAppointmentService struct {
	bookFn   func(ctx context.Context, in ports.BookAppointmentInput) (string, error)
	listFn   func(ctx context.Context, day string) ([]*domain.Appointment, error)
	updateFn func(ctx context.Context, in ports.UpdateAppointmentStatusInput) error
}

func (s *stubAppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (string, error) {
	return s.bookFn(ctx, in)
}

func (s *stubAppointmentService) List(ctx context.Context, day string) ([]*domain.Appointment, error) {
	return s.listFn(ctx, day)
}

func (s *stubAppointmentService) UpdateStatus(ctx context.Context, in ports.UpdateAppointmentStatusInput) error {
	return s.updateFn(ctx, in)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAppointmentHandler_Book_Success(t *testing.T) {
	stub := &stubAppointmentService{
		bookFn: func(_ context.Context, in ports.BookAppointmentInput) (string, error) {
			if in.Service != "signature_witnessing" {
				t.Fatalf("unexpected service: %s", in.Service)
			}
			if in.ActorRole != domain.RoleClient {
				t.Fatalf("expected client actor, got %s", in.ActorRole)
			}
			return "appt_1", nil
		},
	}
	handler := NewAppointmentHandler(stub)

	body := `{"service":"signature_witnessing","start_time":"2026-09-14T10:00:00Z","end_time":"2026-09-14T11:00:00Z"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/appointments", body)
	c.Set("role", domain.RoleClient)

	if err := handler.Book(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "appt_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAppointmentHandler_Book_MissingFields(t *testing.T) {
	handler := NewAppointmentHandler(&stubAppointmentService{
		bookFn: func(context.Context, ports.BookAppointmentInput) (string, error) {
			t.Fatal("service must not be called for an invalid payload")
			return "", nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/v1/appointments", `{"service":"x"}`)
	c.Set("role", domain.RoleClient)

	err := handler.Book(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_Book_ConflictPassedThrough(t *testing.T) {
	handler := NewAppointmentHandler(&stubAppointmentService{
		bookFn: func(context.Context, ports.BookAppointmentInput) (string, error) {
			return "", domain.ErrSlotConflict
		},
	})

	body := `{"service":"x","start_time":"2026-09-14T10:00:00Z","end_time":"2026-09-14T11:00:00Z"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/appointments", body)
	c.Set("role", domain.RoleClient)

	// Domain errors flow to the central error handler untouched.
	if err := handler.Book(c); !errors.Is(err, domain.ErrSlotConflict) {
		t.Fatalf("expected ErrSlotConflict, got %v", err)
	}
}

func TestAppointmentHandler_Book_MissingRole(t *testing.T) {
	handler := NewAppointmentHandler(&stubAppointmentService{
		bookFn: func(context.Context, ports.BookAppointmentInput) (string, error) {
			t.Fatal("service must not be called without a principal")
			return "", nil
		},
	})

	body := `{"service":"x","start_time":"2026-09-14T10:00:00Z","end_time":"2026-09-14T11:00:00Z"}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/appointments", body)

	err := handler.Book(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAppointmentHandler_List_PassesDay(t *testing.T) {
	handler := NewAppointmentHandler(&stubAppointmentService{
		listFn: func(_ context.Context, day string) ([]*domain.Appointment, error) {
			if day != "2026-09-14" {
				t.Fatalf("unexpected day: %q", day)
			}
			return []*domain.Appointment{{ID: "appt_1"}}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/v1/appointments?day=2026-09-14", "")
	c.Set("role", domain.RoleNotary)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("expected count 1, got %d", resp.Count)
	}
}

func TestAppointmentHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	handler := NewAppointmentHandler(&stubAppointmentService{
		updateFn: func(context.Context, ports.UpdateAppointmentStatusInput) error {
			t.Fatal("service must not be called for an invalid status")
			return nil
		},
	})

	c, _ := newTestContext(t, http.MethodPatch, "/v1/appointments/appt_1/status", `{"status":"NoShow"}`)
	c.SetParamNames("id")
	c.SetParamValues("appt_1")
	c.Set("role", domain.RoleNotary)

	err := handler.UpdateStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
