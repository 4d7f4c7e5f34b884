package usecase

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// ProgressUsecase tracks per-(user, course) lecture completion.
type ProgressUsecase interface {
	// RecordCompletion records that the user finished the lecture. It is
	// idempotent: a repeated report returns alreadyCompleted=true and
	// mutates nothing. The lecture must belong to the course's content.
	RecordCompletion(ctx context.Context, userID string, courseID uuid.UUID, lectureID string) (alreadyCompleted bool, err error)

	// GetProgress returns the pair's progress record, or nil when the user
	// has not started the course (absence is not an error).
	GetProgress(ctx context.Context, userID string, courseID uuid.UUID) (*entity.CourseProgress, error)
}
