package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/service"
	mockRepo "academy/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetOrCreateUser_UpsertsFromClaims(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewUserService(mockUserRepo, mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	identity := &service.Identity{
		UserID:   "user-1",
		Name:     "Ada",
		Email:    "ada@example.com",
		ImageURL: "https://img.example.com/ada.png",
		Role:     entity.RoleEducator,
	}
	stored := &entity.User{ID: "user-1", Name: "Ada", Email: "ada@example.com", Role: entity.RoleEducator}

	mockUserRepo.EXPECT().
		UpsertUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "user-1", user.ID)
			assert.Equal(t, entity.RoleEducator, user.Role)
		}).
		Return(nil)
	mockUserRepo.EXPECT().FindUserByID(ctx, "user-1").Return(stored, nil)

	user, err := svc.GetOrCreateUser(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserService_GetOrCreateUser_DefaultsToStudentRole(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewUserService(mockUserRepo, mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	identity := &service.Identity{UserID: "user-2", Name: "Grace"}

	mockUserRepo.EXPECT().
		UpsertUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleStudent, user.Role)
		}).
		Return(nil)
	mockUserRepo.EXPECT().
		FindUserByID(ctx, "user-2").
		Return(&entity.User{ID: "user-2", Role: entity.RoleStudent}, nil)

	user, err := svc.GetOrCreateUser(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, user.Role)
}

func TestUserService_GetOrCreateUser_NilIdentity(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewUserService(mockUserRepo, mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	_, err := svc.GetOrCreateUser(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = svc.GetOrCreateUser(context.Background(), &service.Identity{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserService_GetEnrolledCourses_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewUserService(mockUserRepo, mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	courseIDs := []uuid.UUID{uuid.New(), uuid.New()}
	courses := []*entity.Course{{ID: courseIDs[0]}, {ID: courseIDs[1]}}

	mockEnrollmentRepo.EXPECT().FindCourseIDsByUser(ctx, "user-1").Return(courseIDs, nil)
	mockCourseRepo.EXPECT().FindCoursesByIDs(ctx, courseIDs).Return(courses, nil)

	enrolled, err := svc.GetEnrolledCourses(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, enrolled, 2)
}

func TestUserService_GetEnrolledCourses_NoEnrollments(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewUserService(mockUserRepo, mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()

	mockEnrollmentRepo.EXPECT().FindCourseIDsByUser(ctx, "user-1").Return(nil, nil)

	// No course lookup happens for an empty enrollment set.
	enrolled, err := svc.GetEnrolledCourses(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, enrolled)
	assert.NotNil(t, enrolled)
}

func TestUserService_GetEnrolledCourses_RepositoryError(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewUserService(mockUserRepo, mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()

	mockEnrollmentRepo.EXPECT().FindCourseIDsByUser(ctx, "user-1").Return(nil, errors.New("db error"))

	_, err := svc.GetEnrolledCourses(ctx, "user-1")
	assert.Error(t, err)
}
