package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type educatorService struct {
	userRepo       repository.UserRepository
	courseRepo     repository.CourseRepository
	purchaseRepo   repository.PurchaseRepository
	enrollmentRepo repository.EnrollmentRepository
	storage        service.AssetStorage
	qrService      service.QRCodeService
	validate       *validator.Validate
	logger         *slog.Logger
}

// NewEducatorService creates the educator dashboard use case.
func NewEducatorService(
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	purchaseRepo repository.PurchaseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	storage service.AssetStorage,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.EducatorUsecase {
	return &educatorService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		purchaseRepo:   purchaseRepo,
		enrollmentRepo: enrollmentRepo,
		storage:        storage,
		qrService:      qrService,
		validate:       validator.New(),
		logger:         logger,
	}
}

// CreateCourse validates and persists a new course owned by the educator.
// Chapter and lecture identifiers are minted server side; the stored price is
// normalized to two decimal places.
func (s *educatorService) CreateCourse(ctx context.Context, input usecase.CreateCourseInput) (*entity.Course, error) {
	if input.EducatorID == "" {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	if err := s.requireEducator(ctx, input.EducatorID); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("price: " + input.Price)
	}

	course := &entity.Course{
		ID:              uuid.New(),
		EducatorID:      input.EducatorID,
		Title:           input.Title,
		Description:     input.Description,
		Price:           price.Round(2),
		DiscountPercent: input.DiscountPercent,
		Published:       input.Published,
		Chapters:        buildChapters(input.Chapters),
	}

	if input.Thumbnail != nil {
		key := fmt.Sprintf("thumbnails/%s-%d", course.ID, time.Now().Unix())
		url, err := s.storage.StoreThumbnail(ctx, key, input.ThumbnailContentType, input.Thumbnail)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store thumbnail")
		}
		course.ThumbnailURL = url
	}

	if err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to create course")
	}

	return course, nil
}

func (s *educatorService) GetMyCourses(ctx context.Context, educatorID string) ([]*entity.Course, error) {
	if err := s.requireEducator(ctx, educatorID); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.FindCoursesByEducator(ctx, educatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list educator courses")
	}

	return courses, nil
}

// GetDashboard aggregates completed-purchase earnings, distinct enrolled
// students and course count for the educator.
func (s *educatorService) GetDashboard(ctx context.Context, educatorID string) (*usecase.DashboardData, error) {
	if err := s.requireEducator(ctx, educatorID); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.FindCoursesByEducator(ctx, educatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list educator courses")
	}

	earnings, err := s.purchaseRepo.SumCompletedByEducator(ctx, educatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum earnings")
	}

	students, err := s.enrollmentRepo.CountStudentsByEducator(ctx, educatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count students")
	}

	return &usecase.DashboardData{
		TotalEarnings:    earnings,
		TotalCourses:     len(courses),
		EnrolledStudents: students,
	}, nil
}

// GenerateCourseQR renders a share QR code for one of the educator's own
// courses.
func (s *educatorService) GenerateCourseQR(ctx context.Context, educatorID string, courseID uuid.UUID) ([]byte, error) {
	if err := s.requireEducator(ctx, educatorID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	if course.EducatorID != educatorID {
		return nil, domainerrors.ErrNotCourseOwner
	}

	png, err := s.qrService.GenerateCourseQR(courseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate course qr")
	}

	return png, nil
}

func (s *educatorService) requireEducator(ctx context.Context, educatorID string) error {
	if educatorID == "" {
		return domainerrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, educatorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !user.IsEducator() {
		return domainerrors.ErrEducatorRoleRequired
	}

	return nil
}

func buildChapters(in []usecase.NewChapter) []entity.Chapter {
	chapters := make([]entity.Chapter, 0, len(in))
	for i, ch := range in {
		lectures := make([]entity.Lecture, 0, len(ch.Lectures))
		for _, lec := range ch.Lectures {
			lectures = append(lectures, entity.Lecture{
				ID:              uuid.NewString(),
				Title:           lec.Title,
				URL:             lec.URL,
				DurationMinutes: lec.DurationMinutes,
				PreviewFree:     lec.PreviewFree,
			})
		}

		chapters = append(chapters, entity.Chapter{
			ID:       uuid.NewString(),
			Title:    ch.Title,
			Order:    i + 1,
			Lectures: lectures,
		})
	}

	return chapters
}
