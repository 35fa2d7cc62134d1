package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/notarium/notary-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if jsonErr := json.Unmarshal(rec.Body.Bytes(), &resp); jsonErr != nil {
		t.Fatalf("invalid json body: %v", jsonErr)
	}
	return rec, resp["error"]
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrInvalidTimeRange, http.StatusBadRequest},
		{domain.ErrInvalidDay, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrInvalidID, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrClientNotFound, http.StatusNotFound},
		{domain.ErrCaseNotFound, http.StatusNotFound},
		{domain.ErrAppointmentNotFound, http.StatusNotFound},
		{domain.ErrTemplateNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrSlotConflict, http.StatusConflict},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrGatewayFailure, http.StatusBadGateway},
		{domain.ErrGatewayNotConfigured, http.StatusServiceUnavailable},
		{domain.ErrCalendarBusy, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		rec, msg := runErrorHandler(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if msg == "" {
			t.Errorf("%v: empty error message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	wrapped := fmt.Errorf("book appointment: %w", domain.ErrSlotConflict)
	rec, _ := runErrorHandler(t, wrapped)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped conflict, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnknownErrorIs500(t *testing.T) {
	rec, msg := runErrorHandler(t, errors.New("mongo: socket closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// Internal detail must not leak.
	if msg != "internal server error" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPErrorPreserved(t *testing.T) {
	rec, _ := runErrorHandler(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
}
