package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// CaseHandler handles HTTP requests for case operations.
type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

type createCaseRequest struct {
	ClientID    string     `json:"client_id,omitempty"`
	Title       string     `json:"title" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Description string     `json:"description,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type updateCaseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type listCasesResponse struct {
	Cases []*domain.Case `json:"cases"`
	Count int            `json:"count"`
}

// Create handles POST /v1/cases.
//
// @Summary      Open a new case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCaseRequest  true  "Case details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	var req createCaseRequest
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

	id, err := h.service.Create(c.Request().Context(), ports.CreateCaseInput{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		ActorRole:   role,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// UpdateStatus handles PATCH /v1/cases/:id/status.
//
// @Summary      Transition a case to a new status
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Case id"
// @Param        body  body      updateCaseStatusRequest  true  "Target status"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cases/{id}/status [patch]
func (h *CaseHandler) UpdateStatus(c echo.Context) error {
	var req updateCaseStatusRequest
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

	err = h.service.UpdateStatus(c.Request().Context(), ports.UpdateCaseStatusInput{
		CaseID:    c.Param("id"),
		Status:    req.Status,
		ActorRole: role,
		ActorID:   actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
}

// List handles GET /v1/cases.
//
// @Summary      List cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Exact status match"
// @Param        limit   query     int     false  "Max rows (default 100)"
// @Success      200     {object}  listCasesResponse
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Router       /v1/cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	cases, err := h.service.List(c.Request().Context(), ports.ListCasesInput{
		Status: c.QueryParam("status"),
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listCasesResponse{Cases: cases, Count: len(cases)})
}
