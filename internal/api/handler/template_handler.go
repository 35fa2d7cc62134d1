package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// TemplateHandler handles HTTP requests for document templates.
type TemplateHandler struct {
	service ports.TemplateService
}

func NewTemplateHandler(service ports.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

type renderTemplateRequest struct {
	CaseID string `json:"case_id" validate:"required"`
}

type listTemplatesResponse struct {
	Templates []domain.Template `json:"templates"`
	Count     int               `json:"count"`
}

type renderTemplateResponse struct {
	DocumentID string `json:"document_id"`
	Content    string `json:"content"`
}

// List handles GET /v1/templates. Public.
//
// @Summary      List available document templates
// @Tags         templates
// @Produce      json
// @Success      200  {object}  listTemplatesResponse
// @Router       /v1/templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	tpls := h.service.List(c.Request().Context())
	return c.JSON(http.StatusOK, listTemplatesResponse{Templates: tpls, Count: len(tpls)})
}

// Render handles POST /v1/templates/:key/render.
//
// @Summary      Render a template into a stored document
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string                 true  "Template key"
// @Param        body  body      renderTemplateRequest  true  "Case supplying the values"
// @Success      201   {object}  renderTemplateResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/templates/{key}/render [post]
func (h *TemplateHandler) Render(c echo.Context) error {
	var req renderTemplateRequest
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

	result, err := h.service.Render(c.Request().Context(), ports.RenderTemplateInput{
		TemplateKey: c.Param("key"),
		CaseID:      req.CaseID,
		ActorRole:   role,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, renderTemplateResponse{
		DocumentID: result.DocumentID,
		Content:    result.Content,
	})
}
