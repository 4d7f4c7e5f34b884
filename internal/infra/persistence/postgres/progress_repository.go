package postgres

import (
	"context"
	"encoding/json"

	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// progressRepository implements the domain.ProgressRepository interface using GORM.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository is the constructor for progressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

// CreateProgress persists a new record with version 1. The unique
// (user, course) index turns a create race into ErrDuplicateProgress.
func (repo *progressRepository) CreateProgress(ctx context.Context, progress *entity.CourseProgress) error {
	progressM, err := fromProgressDomain(progress)
	if err != nil {
		return err
	}
	progressM.Version = 1

	if err := repo.db.WithContext(ctx).Create(progressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProgress
		}

		return errors.Wrap(err, "failed to create progress")
	}

	progress.Version = progressM.Version
	progress.CreatedAt = progressM.CreatedAt
	progress.UpdatedAt = progressM.UpdatedAt

	return nil
}

// FindProgress retrieves the record for the (user, course) pair.
func (repo *progressRepository) FindProgress(ctx context.Context, userID string, courseID uuid.UUID) (*entity.CourseProgress, error) {
	var progressM model.ProgressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&progressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgressNotFound
		}

		return nil, errors.Wrap(err, "failed to find progress")
	}

	return toProgressDomain(&progressM)
}

// UpdateProgressVersioned writes the mutated record conditionally on the
// version it was loaded at. A stale version affects zero rows and reports
// ErrProgressVersionConflict so the caller reloads and retries.
func (repo *progressRepository) UpdateProgressVersioned(ctx context.Context, progress *entity.CourseProgress) error {
	lectures, err := json.Marshal(progress.LecturesCompleted)
	if err != nil {
		return errors.Wrap(err, "failed to marshal completed lectures")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProgressModel{}).
		Where("id = ? AND version = ?", progress.ID, progress.Version).
		Updates(map[string]any{
			"lectures_completed": datatypes.JSON(lectures),
			"completed":          progress.Completed,
			"version":            progress.Version + 1,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update progress")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProgressVersionConflict
	}

	progress.Version++

	return nil
}

// --- Mapper Functions ---

// toProgressDomain converts a GORM ProgressModel to a domain CourseProgress entity.
func toProgressDomain(data *model.ProgressModel) (*entity.CourseProgress, error) {
	if data == nil {
		return nil, nil
	}

	var lectures []string
	if len(data.LecturesCompleted) > 0 {
		if err := json.Unmarshal(data.LecturesCompleted, &lectures); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal completed lectures")
		}
	}

	return &entity.CourseProgress{
		ID:                data.ID,
		UserID:            data.UserID,
		CourseID:          data.CourseID,
		LecturesCompleted: lectures,
		Completed:         data.Completed,
		Version:           data.Version,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

// fromProgressDomain converts a domain CourseProgress entity to a GORM ProgressModel.
func fromProgressDomain(data *entity.CourseProgress) (*model.ProgressModel, error) {
	if data == nil {
		return nil, nil
	}

	lectures, err := json.Marshal(data.LecturesCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal completed lectures")
	}

	return &model.ProgressModel{
		ID:                data.ID,
		UserID:            data.UserID,
		CourseID:          data.CourseID,
		LecturesCompleted: datatypes.JSON(lectures),
		Completed:         data.Completed,
		Version:           data.Version,
	}, nil
}
