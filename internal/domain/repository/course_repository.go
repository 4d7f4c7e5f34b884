package repository

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCourseNotFound is returned when a course does not exist in the store.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository manages courses and their embedded content and ratings.
type CourseRepository interface {
	// CreateCourse persists a new course owned by an educator.
	CreateCourse(ctx context.Context, course *entity.Course) error

	// FindCourseByID retrieves a course with content and ratings.
	FindCourseByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// FindCoursesByIDs retrieves the courses for the given IDs, content included.
	FindCoursesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Course, error)

	// FindPublishedCourses retrieves all published courses with ratings but
	// without chapter content.
	FindPublishedCourses(ctx context.Context) ([]*entity.Course, error)

	// FindCoursesByEducator retrieves all courses owned by the educator,
	// newest first.
	FindCoursesByEducator(ctx context.Context, educatorID string) ([]*entity.Course, error)

	// UpsertRating records a user's 1-5 rating for a course. A second
	// submission by the same user overwrites the first (last write wins).
	UpsertRating(ctx context.Context, courseID uuid.UUID, userID string, rating int) error
}
