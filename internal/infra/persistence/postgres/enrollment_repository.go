package postgres

import (
	"context"

	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// enrollmentRepository implements the domain.EnrollmentRepository interface using GORM.
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository is the constructor for enrollmentRepository.
func NewEnrollmentRepository(db *gorm.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Enroll inserts the enrollment row. The conflict-ignoring insert gives the
// relation set semantics: enrolling twice is a silent no-op.
func (repo *enrollmentRepository) Enroll(ctx context.Context, userID string, courseID uuid.UUID) error {
	enrollmentM := &model.EnrollmentModel{
		UserID:   userID,
		CourseID: courseID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(enrollmentM).Error
	if err != nil {
		return errors.Wrap(err, "failed to enroll user")
	}

	return nil
}

// IsEnrolled reports whether the user is enrolled in the course.
func (repo *enrollmentRepository) IsEnrolled(ctx context.Context, userID string, courseID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check enrollment")
	}

	return count > 0, nil
}

// FindCourseIDsByUser lists the IDs of courses the user is enrolled in,
// newest enrollment first.
func (repo *enrollmentRepository) FindCourseIDsByUser(ctx context.Context, userID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("course_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find enrollments by user")
	}

	return ids, nil
}

// FindEnrollmentsByCourse lists enrollments for a course, newest first.
func (repo *enrollmentRepository) FindEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]*entity.Enrollment, error) {
	var enrollmentMs []*model.EnrollmentModel
	err := repo.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&enrollmentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find enrollments by course")
	}

	enrollments := make([]*entity.Enrollment, 0, len(enrollmentMs))
	for _, enrollmentM := range enrollmentMs {
		enrollments = append(enrollments, &entity.Enrollment{
			UserID:     enrollmentM.UserID,
			CourseID:   enrollmentM.CourseID,
			EnrolledAt: enrollmentM.CreatedAt,
		})
	}

	return enrollments, nil
}

// CountStudentsByEducator counts distinct students enrolled across all of
// the educator's courses.
func (repo *enrollmentRepository) CountStudentsByEducator(ctx context.Context, educatorID string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.educator_id = ?", educatorID).
		Distinct("enrollments.user_id").
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count students by educator")
	}

	return count, nil
}
