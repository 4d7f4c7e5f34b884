package repository

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProgressNotFound is returned when no progress record exists for a
	// (user, course) pair. A student who has not started has no record;
	// callers treat this as an empty result, not a failure.
	ErrProgressNotFound = errors.New("course progress not found")

	// ErrProgressVersionConflict is returned when a versioned update loses a
	// compare-and-swap race; callers reload and retry.
	ErrProgressVersionConflict = errors.New("course progress version conflict")

	// ErrDuplicateProgress is returned when a concurrent writer created the
	// (user, course) record first; callers reload and retry.
	ErrDuplicateProgress = errors.New("course progress already exists")
)

// ProgressRepository manages per-(user, course) lecture completion records.
type ProgressRepository interface {
	// CreateProgress persists a new record with version 1. Returns
	// ErrDuplicateProgress when the (user, course) pair already exists.
	CreateProgress(ctx context.Context, progress *entity.CourseProgress) error

	// FindProgress retrieves the record for the pair, or ErrProgressNotFound.
	FindProgress(ctx context.Context, userID string, courseID uuid.UUID) (*entity.CourseProgress, error)

	// UpdateProgressVersioned persists the mutated record with a conditional
	// write on the version the record was loaded at. On success the
	// record's version is bumped; on a stale version it returns
	// ErrProgressVersionConflict and writes nothing.
	UpdateProgressVersioned(ctx context.Context, progress *entity.CourseProgress) error
}
