package impl

import (
	"context"
	"log/slog"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type courseService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	logger         *slog.Logger
}

// NewCourseService creates the catalog and rating use case.
func NewCourseService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	logger *slog.Logger,
) usecase.CourseUsecase {
	return &courseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

func (s *courseService) ListPublishedCourses(ctx context.Context) ([]*entity.Course, error) {
	courses, err := s.courseRepo.FindPublishedCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published courses")
	}

	// The catalog never carries content, only pricing and ratings.
	for _, course := range courses {
		course.Chapters = nil
	}

	return courses, nil
}

// GetCourse returns the course detail. Lecture URLs are only exposed for
// lectures marked free to preview; the enrolled player fetches full content
// through the enrollments surface instead.
func (s *courseService) GetCourse(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrInvalidRequest
	}

	course, err := s.courseRepo.FindCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	for ci := range course.Chapters {
		for li := range course.Chapters[ci].Lectures {
			if !course.Chapters[ci].Lectures[li].PreviewFree {
				course.Chapters[ci].Lectures[li].URL = ""
			}
		}
	}

	return course, nil
}

// RateCourse records the user's rating, overwriting any previous one. Only
// enrolled users may rate.
func (s *courseService) RateCourse(ctx context.Context, userID string, courseID uuid.UUID, rating int) error {
	if userID == "" || courseID == uuid.Nil {
		return domainerrors.ErrInvalidRequest
	}
	if rating < 1 || rating > 5 {
		return domainerrors.ErrInvalidRating
	}

	if _, err := s.courseRepo.FindCourseByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return domainerrors.ErrCourseNotFound
		}

		return errors.Wrap(err, "failed to find course")
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return errors.Wrap(err, "failed to check enrollment")
	}
	if !enrolled {
		return domainerrors.ErrNotEnrolled
	}

	if err := s.courseRepo.UpsertRating(ctx, courseID, userID, rating); err != nil {
		return errors.Wrap(err, "failed to upsert rating")
	}

	return nil
}
