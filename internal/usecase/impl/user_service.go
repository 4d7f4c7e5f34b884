package impl

import (
	"context"
	"log/slog"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/pkg/errors"
)

type userService struct {
	userRepo       repository.UserRepository
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	logger         *slog.Logger
}

// NewUserService creates the student account use case.
func NewUserService(
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// GetOrCreateUser upserts the account from the verified token claims and
// returns the stored row. The identity provider owns the profile fields, so
// every authenticated hit refreshes them.
func (s *userService) GetOrCreateUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	if identity == nil || identity.UserID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	user := &entity.User{
		ID:       identity.UserID,
		Name:     identity.Name,
		Email:    identity.Email,
		ImageURL: identity.ImageURL,
		Role:     identity.Role,
	}
	if user.Role == "" {
		user.Role = entity.RoleStudent
	}

	if err := s.userRepo.UpsertUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	stored, err := s.userRepo.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return stored, nil
}

// GetEnrolledCourses lists the user's enrolled courses with full content.
func (s *userService) GetEnrolledCourses(ctx context.Context, userID string) ([]*entity.Course, error) {
	if userID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}

	courseIDs, err := s.enrollmentRepo.FindCourseIDsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments")
	}
	if len(courseIDs) == 0 {
		return []*entity.Course{}, nil
	}

	courses, err := s.courseRepo.FindCoursesByIDs(ctx, courseIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load enrolled courses")
	}

	return courses, nil
}
