package handler

import (
	"log/slog"
	"net/http"

	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/response"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the purchase checkout handler.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// checkoutRequest is the checkout payload. Currency is optional; pricing is
// always derived server side from the stored course.
type checkoutRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
	Currency string `json:"currency"`
}

// Checkout creates a pending purchase and returns the provider's hosted
// checkout redirect URL.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return response.BadRequest(c, "INVALID_COURSE_ID", "Invalid course ID")
	}

	redirectURL, err := h.uc.CreateCheckoutSession(c.Request().Context(), usecase.CheckoutInput{
		UserID:   middleware.GetUserID(c),
		CourseID: courseID,
		Currency: req.Currency,
		Origin:   c.Request().Header.Get("Origin"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"session_url": redirectURL}, "Checkout session created")
}
