package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// DashboardHandler serves the office landing page rollup.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type dashboardResponse struct {
	AppointmentsToday int64                `json:"appointments_today"`
	OpenCases         int64                `json:"open_cases"`
	CompletedCases    int64                `json:"completed_cases"`
	RecentActivity    []*domain.AuditEntry `json:"recent_activity"`
}

// Summary handles GET /v1/dashboard.
//
// @Summary      Office dashboard rollup
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		AppointmentsToday: summary.AppointmentsToday,
		OpenCases:         summary.OpenCases,
		CompletedCases:    summary.CompletedCases,
		RecentActivity:    summary.RecentActivity,
	})
}
