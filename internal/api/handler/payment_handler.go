package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notarium/notary-api/internal/core/ports"
)

// PaymentHandler handles HTTP requests for checkout sessions.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createCheckoutRequest struct {
	Service     string `json:"service" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"required,min=1"`
	Currency    string `json:"currency,omitempty"`
	CaseID      string `json:"case_id,omitempty"`
	ClientID    string `json:"client_id,omitempty"`
	SuccessURL  string `json:"success_url,omitempty" validate:"omitempty,url"`
	CancelURL   string `json:"cancel_url,omitempty" validate:"omitempty,url"`
}

type createCheckoutResponse struct {
	PaymentID   string `json:"payment_id"`
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// CreateCheckout handles POST /v1/payments/checkout.
//
// @Summary      Start a hosted checkout session
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCheckoutRequest  true  "Checkout details"
// @Success      201   {object}  createCheckoutResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/payments/checkout [post]
func (h *PaymentHandler) CreateCheckout(c echo.Context) error {
	var req createCheckoutRequest
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

	result, err := h.service.CreateCheckout(c.Request().Context(), ports.CreateCheckoutInput{
		Service:     req.Service,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		CaseID:      req.CaseID,
		ClientID:    req.ClientID,
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
		ActorRole:   role,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createCheckoutResponse{
		PaymentID:   result.PaymentID,
		SessionID:   result.SessionID,
		CheckoutURL: result.CheckoutURL,
	})
}
