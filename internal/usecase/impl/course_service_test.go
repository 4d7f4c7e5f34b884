package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseService_ListPublishedCourses_StripsContent(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewCourseService(mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	courses := []*entity.Course{
		{
			ID:    uuid.New(),
			Title: "Course A",
			Price: decimal.RequireFromString("10.00"),
			Chapters: []entity.Chapter{
				{ID: "ch-1", Lectures: []entity.Lecture{{ID: "lec-1", URL: "https://cdn/lec-1"}}},
			},
			Ratings: []entity.Rating{{UserID: "u1", Rating: 5}},
		},
		{ID: uuid.New(), Title: "Course B", Price: decimal.RequireFromString("20.00")},
	}

	mockCourseRepo.EXPECT().FindPublishedCourses(ctx).Return(courses, nil)

	listed, err := svc.ListPublishedCourses(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Nil(t, listed[0].Chapters)
	assert.Len(t, listed[0].Ratings, 1)
}

func TestCourseService_GetCourse_BlanksNonPreviewLectureURLs(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewCourseService(mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	course := &entity.Course{
		ID:    uuid.New(),
		Title: "Course A",
		Chapters: []entity.Chapter{
			{
				ID: "ch-1",
				Lectures: []entity.Lecture{
					{ID: "lec-1", URL: "https://cdn/lec-1", PreviewFree: true},
					{ID: "lec-2", URL: "https://cdn/lec-2", PreviewFree: false},
				},
			},
		},
	}

	mockCourseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)

	detail, err := svc.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, detail.Chapters, 1)
	assert.Equal(t, "https://cdn/lec-1", detail.Chapters[0].Lectures[0].URL)
	assert.Empty(t, detail.Chapters[0].Lectures[1].URL)
}

func TestCourseService_GetCourse_NotFound(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewCourseService(mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	id := uuid.New()

	mockCourseRepo.EXPECT().FindCourseByID(ctx, id).Return(nil, repository.ErrCourseNotFound)

	_, err := svc.GetCourse(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCourseService_RateCourse_Success(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewCourseService(mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	course := &entity.Course{ID: uuid.New()}

	mockCourseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)
	mockEnrollmentRepo.EXPECT().IsEnrolled(ctx, "user-1", course.ID).Return(true, nil)
	mockCourseRepo.EXPECT().UpsertRating(ctx, course.ID, "user-1", 4).Return(nil)

	err := svc.RateCourse(ctx, "user-1", course.ID, 4)
	require.NoError(t, err)
}

func TestCourseService_RateCourse_InvalidRating(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewCourseService(mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	courseID := uuid.New()

	err := svc.RateCourse(ctx, "user-1", courseID, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)

	err = svc.RateCourse(ctx, "user-1", courseID, 6)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
}

func TestCourseService_RateCourse_NotEnrolled(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewCourseService(mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	course := &entity.Course{ID: uuid.New()}

	mockCourseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)
	mockEnrollmentRepo.EXPECT().IsEnrolled(ctx, "user-1", course.ID).Return(false, nil)

	err := svc.RateCourse(ctx, "user-1", course.ID, 5)
	assert.ErrorIs(t, err, domainerrors.ErrNotEnrolled)
}

func TestCourseService_RateCourse_CourseNotFound(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewCourseService(mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()
	courseID := uuid.New()

	mockCourseRepo.EXPECT().FindCourseByID(ctx, courseID).Return(nil, repository.ErrCourseNotFound)

	err := svc.RateCourse(ctx, "user-1", courseID, 3)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCourseService_ListPublishedCourses_RepositoryError(t *testing.T) {
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockEnrollmentRepo := mockRepo.NewMockEnrollmentRepository(t)
	svc := NewCourseService(mockCourseRepo, mockEnrollmentRepo, newDiscardLogger())

	ctx := context.Background()

	mockCourseRepo.EXPECT().FindPublishedCourses(ctx).Return(nil, errors.New("db error"))

	_, err := svc.ListPublishedCourses(ctx)
	assert.Error(t, err)
}
