package handler

import (
	"io"
	"log/slog"
	"net/http"

	"academy/internal/delivery/http/response"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WebhookHandler receives the payment provider's notifications.
type WebhookHandler struct {
	gateway service.PaymentGateway
	payment usecase.PaymentUsecase
	logger  *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(gateway service.PaymentGateway, payment usecase.PaymentUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		gateway: gateway,
		payment: payment,
		logger:  logger,
	}
}

// HandleStripeWebhook verifies the signature over the raw body and settles
// the referenced purchase. The handler is idempotent: the provider may
// deliver the same event more than once.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYLOAD", "Failed to read webhook payload")
	}

	outcome, relevant, err := h.gateway.ParseWebhookEvent(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("webhook rejected", slog.Any("error", err))

		return domainerrors.ErrWebhookSignature
	}
	if !relevant {
		return response.Success(c, http.StatusOK, nil, "Event ignored")
	}

	if err := h.payment.ConfirmPayment(c.Request().Context(), outcome.PurchaseID, outcome.Succeeded); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event processed")
}
