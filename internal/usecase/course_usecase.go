package usecase

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// CourseUsecase serves the student-facing catalog and ratings.
type CourseUsecase interface {
	// ListPublishedCourses returns the catalog: published courses with
	// ratings but without chapter content or student sets.
	ListPublishedCourses(ctx context.Context) ([]*entity.Course, error)

	// GetCourse returns the course detail with chapter content. Lecture URLs
	// of non-preview lectures are blanked.
	GetCourse(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// RateCourse records the user's 1-5 rating. Only enrolled users may
	// rate; a resubmission overwrites the previous rating.
	RateCourse(ctx context.Context, userID string, courseID uuid.UUID, rating int) error
}
