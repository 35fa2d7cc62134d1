package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

// DocumentHandler handles HTTP requests for document records.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type createDocumentRequest struct {
	CaseID  string   `json:"case_id" validate:"required"`
	Name    string   `json:"name" validate:"required"`
	Content string   `json:"content,omitempty"`
	FileURL string   `json:"file_url,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

type listDocumentsResponse struct {
	Documents []*domain.Document `json:"documents"`
	Count     int                `json:"count"`
}

// Create handles POST /v1/documents.
//
// @Summary      Record a document against a case
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDocumentRequest  true  "Document details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	var req createDocumentRequest
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

	id, err := h.service.Create(c.Request().Context(), ports.CreateDocumentInput{
		CaseID:    req.CaseID,
		Name:      req.Name,
		Content:   req.Content,
		FileURL:   req.FileURL,
		Tags:      req.Tags,
		ActorRole: role,
		ActorID:   actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// List handles GET /v1/documents.
//
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        case_id  query     string  false  "Restrict to one case"
// @Param        limit    query     int     false  "Max rows"
// @Success      200      {object}  listDocumentsResponse
// @Failure      401      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /v1/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	documents, err := h.service.List(c.Request().Context(), ports.DocumentFilter{
		CaseID: c.QueryParam("case_id"),
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listDocumentsResponse{Documents: documents, Count: len(documents)})
}
