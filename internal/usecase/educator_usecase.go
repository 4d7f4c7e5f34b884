package usecase

import (
	"context"
	"io"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewLecture describes one lecture in a course creation request.
type NewLecture struct {
	Title           string `json:"title" validate:"required"`
	URL             string `json:"url" validate:"required,url"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	PreviewFree     bool   `json:"preview_free"`
}

// NewChapter describes one chapter in a course creation request.
type NewChapter struct {
	Title    string       `json:"title" validate:"required"`
	Lectures []NewLecture `json:"lectures" validate:"required,min=1,dive"`
}

// CreateCourseInput is the educator's course creation payload. The thumbnail
// arrives as a separate multipart part and is stored in the blob bucket.
type CreateCourseInput struct {
	EducatorID      string
	Title           string       `json:"title" validate:"required"`
	Description     string       `json:"description"`
	Price           string       `json:"price" validate:"required"`
	DiscountPercent int          `json:"discount_percent" validate:"gte=0,lte=100"`
	Published       bool         `json:"published"`
	Chapters        []NewChapter `json:"chapters" validate:"required,min=1,dive"`

	ThumbnailContentType string    `json:"-"`
	Thumbnail            io.Reader `json:"-"`
}

// DashboardData summarizes an educator's business: completed-purchase
// earnings, distinct enrolled students and course count.
type DashboardData struct {
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	TotalCourses     int             `json:"total_courses"`
	EnrolledStudents int64           `json:"enrolled_students"`
}

// EducatorUsecase serves the educator dashboard surface.
type EducatorUsecase interface {
	// CreateCourse validates and persists a new course, storing the
	// thumbnail when provided.
	CreateCourse(ctx context.Context, input CreateCourseInput) (*entity.Course, error)

	// GetMyCourses lists the educator's own courses, newest first.
	GetMyCourses(ctx context.Context, educatorID string) ([]*entity.Course, error)

	// GetDashboard aggregates earnings and enrollment figures.
	GetDashboard(ctx context.Context, educatorID string) (*DashboardData, error)

	// GenerateCourseQR renders a share QR code for one of the educator's
	// own courses.
	GenerateCourseQR(ctx context.Context, educatorID string, courseID uuid.UUID) ([]byte, error)
}
