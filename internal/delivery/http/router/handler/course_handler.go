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

// CourseHandler holds dependencies for the public catalog handlers.
type CourseHandler struct {
	uc     usecase.CourseUsecase
	logger *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler, injected by Fx.
func NewCourseHandler(uc usecase.CourseUsecase, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCourses returns the published course catalog.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.uc.ListPublishedCourses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, courses, "Courses retrieved successfully")
}

// GetCourse returns one course with preview-gated content.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_COURSE_ID", "Invalid course ID")
	}

	course, err := h.uc.GetCourse(c.Request().Context(), courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, course, "Course retrieved successfully")
}

// rateCourseRequest is the rating submission payload.
type rateCourseRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
}

// RateCourse records the caller's rating for a course.
func (h *CourseHandler) RateCourse(c echo.Context) error {
	var req rateCourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return response.BadRequest(c, "INVALID_COURSE_ID", "Invalid course ID")
	}

	if err := h.uc.RateCourse(c.Request().Context(), middleware.GetUserID(c), courseID, req.Rating); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rating recorded successfully")
}
