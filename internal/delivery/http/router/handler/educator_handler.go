package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/response"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EducatorHandler holds dependencies for the educator dashboard handlers.
type EducatorHandler struct {
	uc     usecase.EducatorUsecase
	logger *slog.Logger
}

// NewEducatorHandler is the constructor for EducatorHandler, injected by Fx.
func NewEducatorHandler(uc usecase.EducatorUsecase, logger *slog.Logger) *EducatorHandler {
	return &EducatorHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCourse creates a new course from a multipart form: a "courseData"
// part holding the course JSON and an optional "thumbnail" file part.
func (h *EducatorHandler) CreateCourse(c echo.Context) error {
	courseData := c.FormValue("courseData")
	if courseData == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing courseData form field")
	}

	var input usecase.CreateCourseInput
	if err := json.Unmarshal([]byte(courseData), &input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course JSON")
	}
	input.EducatorID = middleware.GetUserID(c)

	if fileHeader, err := c.FormFile("thumbnail"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_THUMBNAIL", "Failed to read thumbnail upload")
		}
		defer file.Close()

		input.Thumbnail = file
		input.ThumbnailContentType = fileHeader.Header.Get("Content-Type")
	}

	course, err := h.uc.CreateCourse(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, course, "Course created successfully")
}

// MyCourses lists the educator's own courses, drafts included.
func (h *EducatorHandler) MyCourses(c echo.Context) error {
	courses, err := h.uc.GetMyCourses(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, courses, "Courses retrieved successfully")
}

// Dashboard returns the educator's aggregated earnings and enrollment figures.
func (h *EducatorHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.uc.GetDashboard(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Dashboard retrieved successfully")
}

// CourseQR renders the course share link as a PNG QR code.
func (h *EducatorHandler) CourseQR(c echo.Context) error {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_COURSE_ID", "Invalid course ID")
	}

	png, err := h.uc.GenerateCourseQR(c.Request().Context(), middleware.GetUserID(c), courseID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
