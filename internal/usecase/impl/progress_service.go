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

// maxProgressAttempts bounds the optimistic-concurrency retry loop.
const maxProgressAttempts = 3

type progressService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
	logger         *slog.Logger
}

// NewProgressService creates the per-course progress tracker.
func NewProgressService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	progressRepo repository.ProgressRepository,
	logger *slog.Logger,
) usecase.ProgressUsecase {
	return &progressService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		logger:         logger,
	}
}

// RecordCompletion marks one lecture completed for the user in the course.
// Recording is idempotent: a lecture already in the completed set reports
// alreadyCompleted without touching the record. Concurrent recorders for the
// same user/course pair are serialized by a version check on the progress
// row; a lost race is retried a bounded number of times.
func (s *progressService) RecordCompletion(ctx context.Context, userID string, courseID uuid.UUID, lectureID string) (bool, error) {
	if userID == "" || courseID == uuid.Nil || lectureID == "" {
		return false, domainerrors.ErrInvalidRequest
	}

	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return false, domainerrors.ErrCourseNotFound
		}

		return false, errors.Wrap(err, "failed to find course")
	}

	if !course.HasLecture(lectureID) {
		return false, domainerrors.ErrLectureNotInCourse
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check enrollment")
	}
	if !enrolled {
		return false, domainerrors.ErrNotEnrolled
	}

	total := course.TotalLectures()

	for attempt := 0; attempt < maxProgressAttempts; attempt++ {
		progress, err := s.progressRepo.FindProgress(ctx, userID, courseID)
		if err != nil {
			if !errors.Is(err, repository.ErrProgressNotFound) {
				return false, errors.Wrap(err, "failed to find progress")
			}

			created := &entity.CourseProgress{
				ID:                uuid.New(),
				UserID:            userID,
				CourseID:          courseID,
				LecturesCompleted: []string{lectureID},
				Completed:         total == 1,
			}
			if err := s.progressRepo.CreateProgress(ctx, created); err != nil {
				if errors.Is(err, repository.ErrDuplicateProgress) {
					// A concurrent recorder created the row first.
					continue
				}

				return false, errors.Wrap(err, "failed to create progress")
			}

			return false, nil
		}

		if progress.HasLecture(lectureID) {
			return true, nil
		}

		progress.RecordLecture(lectureID, total)

		if err := s.progressRepo.UpdateProgressVersioned(ctx, progress); err != nil {
			if errors.Is(err, repository.ErrProgressVersionConflict) {
				continue
			}

			return false, errors.Wrap(err, "failed to update progress")
		}

		return false, nil
	}

	s.logger.Warn("progress update contention exhausted retries",
		slog.String("user_id", userID),
		slog.String("course_id", courseID.String()),
	)

	return false, domainerrors.ErrConflict
}

// GetProgress returns the user's progress for the course, or nil when no
// lecture has been recorded yet.
func (s *progressService) GetProgress(ctx context.Context, userID string, courseID uuid.UUID) (*entity.CourseProgress, error) {
	if userID == "" || courseID == uuid.Nil {
		return nil, domainerrors.ErrInvalidRequest
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check enrollment")
	}
	if !enrolled {
		return nil, domainerrors.ErrNotEnrolled
	}

	progress, err := s.progressRepo.FindProgress(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find progress")
	}

	return progress, nil
}
