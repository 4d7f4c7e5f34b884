package repository

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// EnrollmentRepository manages the user<->course enrollment relation. One
// row backs both the user's enrolled-course set and the course's student
// set, so the back-references stay mutually consistent by construction.
type EnrollmentRepository interface {
	// Enroll inserts the enrollment row. Enrolling twice is a no-op
	// (set semantics via a conflict-ignoring insert).
	Enroll(ctx context.Context, userID string, courseID uuid.UUID) error

	// IsEnrolled reports whether the user is enrolled in the course.
	IsEnrolled(ctx context.Context, userID string, courseID uuid.UUID) (bool, error)

	// FindCourseIDsByUser lists the IDs of courses the user is enrolled in.
	FindCourseIDsByUser(ctx context.Context, userID string) ([]uuid.UUID, error)

	// FindEnrollmentsByCourse lists enrollments for a course, newest first.
	FindEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Enrollment, error)

	// CountStudentsByEducator counts distinct students enrolled across all
	// of the educator's courses.
	CountStudentsByEducator(ctx context.Context, educatorID string) (int64, error)
}
