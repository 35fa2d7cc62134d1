package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the shared calendar.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type bookAppointmentRequest struct {
	ClientID  string    `json:"client_id,omitempty"`
	Service   string    `json:"service" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CaseID    string    `json:"case_id,omitempty"`
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Scheduled Completed Cancelled"`
}

type listAppointmentsResponse struct {
	Appointments []*domain.Appointment `json:"appointments"`
	Count        int                   `json:"count"`
}

// Book handles POST /v1/appointments. Public: anonymous callers book as the
// client role.
//
// @Summary      Book an appointment slot
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      bookAppointmentRequest  true  "Slot details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		ClientID:  req.ClientID,
		Service:   req.Service,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Notes:     req.Notes,
		CaseID:    req.CaseID,
		ActorRole: role,
		ActorID:   actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// List handles GET /v1/appointments.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        day  query     string  false  "Calendar date (YYYY-MM-DD), restricts results to that UTC day"
// @Success      200  {object}  listAppointmentsResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.List(c.Request().Context(), c.QueryParam("day"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAppointmentsResponse{Appointments: appointments, Count: len(appointments)})
}

// UpdateStatus handles PATCH /v1/appointments/:id/status.
//
// @Summary      Complete or cancel an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Appointment id"
// @Param        body  body      updateAppointmentStatusRequest  true  "Target status"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	err = h.service.UpdateStatus(c.Request().Context(), ports.UpdateAppointmentStatusInput{
		AppointmentID: c.Param("id"),
		Status:        req.Status,
		ActorRole:     role,
		ActorID:       actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
}
