package impl

import (
	"context"
	"strings"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"
	mockSvc "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type educatorServiceFixture struct {
	userRepo       *mockRepo.MockUserRepository
	courseRepo     *mockRepo.MockCourseRepository
	purchaseRepo   *mockRepo.MockPurchaseRepository
	enrollmentRepo *mockRepo.MockEnrollmentRepository
	storage        *mockSvc.MockAssetStorage
	qrService      *mockSvc.MockQRCodeService
}

func newEducatorServiceFixture(t *testing.T) *educatorServiceFixture {
	return &educatorServiceFixture{
		userRepo:       mockRepo.NewMockUserRepository(t),
		courseRepo:     mockRepo.NewMockCourseRepository(t),
		purchaseRepo:   mockRepo.NewMockPurchaseRepository(t),
		enrollmentRepo: mockRepo.NewMockEnrollmentRepository(t),
		storage:        mockSvc.NewMockAssetStorage(t),
		qrService:      mockSvc.NewMockQRCodeService(t),
	}
}

func (f *educatorServiceFixture) service() usecase.EducatorUsecase {
	return NewEducatorService(
		f.userRepo, f.courseRepo, f.purchaseRepo, f.enrollmentRepo,
		f.storage, f.qrService, newDiscardLogger(),
	)
}

func (f *educatorServiceFixture) expectEducator(ctx context.Context, id string) {
	f.userRepo.EXPECT().
		FindUserByID(ctx, id).
		Return(&entity.User{ID: id, Role: entity.RoleEducator}, nil)
}

func newCreateCourseInput(educatorID string) usecase.CreateCourseInput {
	return usecase.CreateCourseInput{
		EducatorID:      educatorID,
		Title:           "Distributed Systems",
		Description:     "Consensus, replication and failure",
		Price:           "99.90",
		DiscountPercent: 10,
		Published:       true,
		Chapters: []usecase.NewChapter{
			{
				Title: "Foundations",
				Lectures: []usecase.NewLecture{
					{Title: "Intro", URL: "https://cdn.example.com/intro.mp4", DurationMinutes: 12, PreviewFree: true},
					{Title: "Clocks", URL: "https://cdn.example.com/clocks.mp4", DurationMinutes: 30},
				},
			},
			{
				Title: "Replication",
				Lectures: []usecase.NewLecture{
					{Title: "Raft", URL: "https://cdn.example.com/raft.mp4", DurationMinutes: 45},
				},
			},
		},
	}
}

func TestEducatorService_CreateCourse_Success(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()
	f.expectEducator(ctx, "educator-1")

	f.courseRepo.EXPECT().
		CreateCourse(ctx, mock.AnythingOfType("*entity.Course")).
		Return(nil)

	course, err := svc.CreateCourse(ctx, newCreateCourseInput("educator-1"))
	require.NoError(t, err)
	require.NotNil(t, course)

	assert.NotEqual(t, uuid.Nil, course.ID)
	assert.Equal(t, "educator-1", course.EducatorID)
	assert.Equal(t, "99.90", course.Price.StringFixed(2))
	assert.Equal(t, 10, course.DiscountPercent)
	assert.True(t, course.Published)

	// Chapter and lecture IDs are minted server side and ordered 1..n.
	require.Len(t, course.Chapters, 2)
	assert.Equal(t, 1, course.Chapters[0].Order)
	assert.Equal(t, 2, course.Chapters[1].Order)
	for _, chapter := range course.Chapters {
		assert.NotEmpty(t, chapter.ID)
		for _, lecture := range chapter.Lectures {
			assert.NotEmpty(t, lecture.ID)
		}
	}
	assert.Equal(t, 3, course.TotalLectures())
}

func TestEducatorService_CreateCourse_StoresThumbnail(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()
	f.expectEducator(ctx, "educator-1")

	f.storage.EXPECT().
		StoreThumbnail(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("https://assets.example.com/thumbnails/abc.png", nil)
	f.courseRepo.EXPECT().
		CreateCourse(ctx, mock.AnythingOfType("*entity.Course")).
		Return(nil)

	input := newCreateCourseInput("educator-1")
	input.Thumbnail = strings.NewReader("png bytes")
	input.ThumbnailContentType = "image/png"

	course, err := svc.CreateCourse(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "https://assets.example.com/thumbnails/abc.png", course.ThumbnailURL)
}

func TestEducatorService_CreateCourse_RequiresEducatorRole(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()

	f.userRepo.EXPECT().
		FindUserByID(ctx, "student-1").
		Return(&entity.User{ID: "student-1", Role: entity.RoleStudent}, nil)

	_, err := svc.CreateCourse(ctx, newCreateCourseInput("student-1"))
	assert.ErrorIs(t, err, domainerrors.ErrEducatorRoleRequired)
}

func TestEducatorService_CreateCourse_InvalidPrice(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()
	f.expectEducator(ctx, "educator-1")

	input := newCreateCourseInput("educator-1")
	input.Price = "-5.00"

	_, err := svc.CreateCourse(ctx, input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_REQUEST", appErr.ErrorCode())
}

func TestEducatorService_CreateCourse_ValidationRejectsEmptyChapters(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	input := newCreateCourseInput("educator-1")
	input.Chapters = nil

	_, err := svc.CreateCourse(context.Background(), input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_REQUEST", appErr.ErrorCode())
}

func TestEducatorService_GetDashboard_Aggregates(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()
	f.expectEducator(ctx, "educator-1")

	courses := []*entity.Course{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	earnings := decimal.RequireFromString("1234.50")

	f.courseRepo.EXPECT().FindCoursesByEducator(ctx, "educator-1").Return(courses, nil)
	f.purchaseRepo.EXPECT().SumCompletedByEducator(ctx, "educator-1").Return(earnings, nil)
	f.enrollmentRepo.EXPECT().CountStudentsByEducator(ctx, "educator-1").Return(int64(42), nil)

	dashboard, err := svc.GetDashboard(ctx, "educator-1")
	require.NoError(t, err)
	assert.Equal(t, "1234.50", dashboard.TotalEarnings.StringFixed(2))
	assert.Equal(t, 3, dashboard.TotalCourses)
	assert.Equal(t, int64(42), dashboard.EnrolledStudents)
}

func TestEducatorService_GetMyCourses_Success(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()
	f.expectEducator(ctx, "educator-1")

	courses := []*entity.Course{{ID: uuid.New()}}
	f.courseRepo.EXPECT().FindCoursesByEducator(ctx, "educator-1").Return(courses, nil)

	mine, err := svc.GetMyCourses(ctx, "educator-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestEducatorService_GenerateCourseQR_Success(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()
	f.expectEducator(ctx, "educator-1")

	course := &entity.Course{ID: uuid.New(), EducatorID: "educator-1"}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	f.courseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)
	f.qrService.EXPECT().GenerateCourseQR(course.ID).Return(png, nil)

	got, err := svc.GenerateCourseQR(ctx, "educator-1", course.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestEducatorService_GenerateCourseQR_NotOwner(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()
	f.expectEducator(ctx, "educator-1")

	course := &entity.Course{ID: uuid.New(), EducatorID: "educator-2"}

	f.courseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)

	_, err := svc.GenerateCourseQR(ctx, "educator-1", course.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotCourseOwner)
}

func TestEducatorService_GenerateCourseQR_CourseNotFound(t *testing.T) {
	f := newEducatorServiceFixture(t)
	svc := f.service()

	ctx := context.Background()
	f.expectEducator(ctx, "educator-1")

	courseID := uuid.New()
	f.courseRepo.EXPECT().FindCourseByID(ctx, courseID).Return(nil, repository.ErrCourseNotFound)

	_, err := svc.GenerateCourseQR(ctx, "educator-1", courseID)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}
