package postgres

import (
	"context"
	"encoding/json"

	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// courseRepository implements the domain.CourseRepository interface using GORM.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// CreateCourse persists a new course with its embedded chapter content.
func (repo *courseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	courseM, err := fromCourseDomain(course)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		return errors.Wrap(err, "failed to create course")
	}

	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// FindCourseByID retrieves a course with content, ratings and the current
// enrollment count.
func (repo *courseRepository) FindCourseByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Ratings").
		Where("id = ?", id).
		First(&courseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by id")
	}

	course, err := toCourseDomain(&courseM, true)
	if err != nil {
		return nil, err
	}

	counts, err := repo.enrolledCounts(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	course.EnrolledCount = counts[id]

	return course, nil
}

// FindCoursesByIDs retrieves the courses for the given IDs, content included.
func (repo *courseRepository) FindCoursesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Course, error) {
	if len(ids) == 0 {
		return []*entity.Course{}, nil
	}

	var courseMs []*model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Ratings").
		Where("id IN ?", ids).
		Find(&courseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find courses by ids")
	}

	return repo.toCoursesWithCounts(ctx, courseMs, true)
}

// FindPublishedCourses retrieves the catalog: published courses with ratings
// and enrollment counts but without chapter content.
func (repo *courseRepository) FindPublishedCourses(ctx context.Context) ([]*entity.Course, error) {
	var courseMs []*model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Ratings").
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&courseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find published courses")
	}

	return repo.toCoursesWithCounts(ctx, courseMs, false)
}

// FindCoursesByEducator retrieves all courses owned by the educator, drafts
// included, newest first.
func (repo *courseRepository) FindCoursesByEducator(ctx context.Context, educatorID string) ([]*entity.Course, error) {
	var courseMs []*model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Ratings").
		Where("educator_id = ?", educatorID).
		Order("created_at DESC").
		Find(&courseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find courses by educator")
	}

	return repo.toCoursesWithCounts(ctx, courseMs, true)
}

// UpsertRating records a user's rating, overwriting any previous one.
func (repo *courseRepository) UpsertRating(ctx context.Context, courseID uuid.UUID, userID string, rating int) error {
	ratingM := &model.RatingModel{
		CourseID: courseID,
		UserID:   userID,
		Rating:   rating,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(ratingM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert rating")
	}

	return nil
}

// enrolledCounts returns the enrollment count per course ID.
func (repo *courseRepository) enrolledCounts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]int64{}, nil
	}

	var rows []struct {
		CourseID uuid.UUID
		Count    int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Select("course_id, COUNT(*) AS count").
		Where("course_id IN ?", ids).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count enrollments")
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CourseID] = row.Count
	}

	return counts, nil
}

func (repo *courseRepository) toCoursesWithCounts(ctx context.Context, courseMs []*model.CourseModel, withContent bool) ([]*entity.Course, error) {
	ids := make([]uuid.UUID, 0, len(courseMs))
	for _, courseM := range courseMs {
		ids = append(ids, courseM.ID)
	}

	counts, err := repo.enrolledCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	courses := make([]*entity.Course, 0, len(courseMs))
	for _, courseM := range courseMs {
		course, err := toCourseDomain(courseM, withContent)
		if err != nil {
			return nil, err
		}
		course.EnrolledCount = counts[courseM.ID]
		courses = append(courses, course)
	}

	return courses, nil
}

// --- Mapper Functions ---

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
// Chapter content is only unmarshaled when the caller needs it.
func toCourseDomain(data *model.CourseModel, withContent bool) (*entity.Course, error) {
	if data == nil {
		return nil, nil
	}

	price, err := decimal.NewFromString(data.Price)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse stored price %q", data.Price)
	}

	var chapters []entity.Chapter
	if withContent && len(data.Chapters) > 0 {
		if err := json.Unmarshal(data.Chapters, &chapters); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal course chapters")
		}
	}

	ratings := make([]entity.Rating, 0, len(data.Ratings))
	for _, r := range data.Ratings {
		ratings = append(ratings, entity.Rating{
			UserID: r.UserID,
			Rating: r.Rating,
		})
	}

	return &entity.Course{
		ID:              data.ID,
		EducatorID:      data.EducatorID,
		Title:           data.Title,
		Description:     data.Description,
		ThumbnailURL:    data.ThumbnailURL,
		Price:           price,
		DiscountPercent: data.DiscountPercent,
		Published:       data.Published,
		Chapters:        chapters,
		Ratings:         ratings,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

// fromCourseDomain converts a domain Course entity to a GORM CourseModel.
func fromCourseDomain(data *entity.Course) (*model.CourseModel, error) {
	if data == nil {
		return nil, nil
	}

	chapters, err := json.Marshal(data.Chapters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal course chapters")
	}

	return &model.CourseModel{
		ID:              data.ID,
		EducatorID:      data.EducatorID,
		Title:           data.Title,
		Description:     data.Description,
		ThumbnailURL:    data.ThumbnailURL,
		Price:           data.Price.StringFixed(2),
		DiscountPercent: data.DiscountPercent,
		Published:       data.Published,
		Chapters:        datatypes.JSON(chapters),
	}, nil
}
