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

// ProgressHandler holds dependencies for lecture progress handlers.
type ProgressHandler struct {
	uc     usecase.ProgressUsecase
	logger *slog.Logger
}

// NewProgressHandler is the constructor for ProgressHandler, injected by Fx.
func NewProgressHandler(uc usecase.ProgressUsecase, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		uc:     uc,
		logger: logger,
	}
}

// recordProgressRequest is the lecture completion payload.
type recordProgressRequest struct {
	CourseID  string `json:"courseId" validate:"required,uuid"`
	LectureID string `json:"lectureId" validate:"required"`
}

// RecordCompletion marks one lecture completed for the caller.
func (h *ProgressHandler) RecordCompletion(c echo.Context) error {
	var req recordProgressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid progress input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return response.BadRequest(c, "INVALID_COURSE_ID", "Invalid course ID")
	}

	alreadyCompleted, err := h.uc.RecordCompletion(c.Request().Context(), middleware.GetUserID(c), courseID, req.LectureID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Lecture completion recorded"
	if alreadyCompleted {
		message = "Lecture already completed"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"already_completed": alreadyCompleted}, message)
}

// GetProgress returns the caller's progress for a course. A student who has
// not recorded anything yet gets an empty result, not an error.
func (h *ProgressHandler) GetProgress(c echo.Context) error {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_COURSE_ID", "Invalid course ID")
	}

	progress, err := h.uc.GetProgress(c.Request().Context(), middleware.GetUserID(c), courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, progress, "Progress retrieved successfully")
}
