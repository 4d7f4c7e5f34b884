package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	mockRepo "academy/internal/mocks/repository"
	mockSvc "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCourse(price string, discount int) *entity.Course {
	return &entity.Course{
		ID:              uuid.New(),
		EducatorID:      "educator-1",
		Title:           "Distributed Systems",
		Price:           decimal.RequireFromString(price),
		DiscountPercent: discount,
		Published:       true,
	}
}

func TestCheckoutService_CreateCheckoutSession_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewCheckoutService(mockUserRepo, mockCourseRepo, mockPurchaseRepo, mockGateway, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	course := newTestCourse("100.00", 20)
	user := &entity.User{ID: "user-1", Name: "Ada", Email: "ada@example.com", Role: entity.RoleStudent}

	mockUserRepo.EXPECT().FindUserByID(ctx, "user-1").Return(user, nil)
	mockCourseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)

	var created *entity.Purchase
	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.Purchase")).
		Run(func(_ context.Context, purchase *entity.Purchase) {
			created = purchase
		}).
		Return(nil)

	mockGateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("service.CheckoutSessionParams")).
		Run(func(_ context.Context, params service.CheckoutSessionParams) {
			assert.Equal(t, int64(8000), params.AmountMinor)
			assert.Equal(t, "usd", params.Currency)
			assert.Equal(t, "Distributed Systems", params.CourseTitle)
			assert.Equal(t, "https://academy.test/loading/my-enrollments", params.SuccessURL)
			assert.Equal(t, "https://academy.test/", params.CancelURL)
		}).
		Return("https://pay.example.com/session/abc", nil)

	url, err := svc.CreateCheckoutSession(ctx, usecase.CheckoutInput{
		UserID:   "user-1",
		CourseID: course.ID,
		Currency: "USD",
		Origin:   "https://academy.test",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/abc", url)

	require.NotNil(t, created)
	assert.Equal(t, course.ID, created.CourseID)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, entity.PurchaseStatusPending, created.Status)
	assert.Equal(t, "80.00", created.Amount.StringFixed(2))
	assert.Equal(t, int64(8000), created.MinorUnits())
}

func TestCheckoutService_CreateCheckoutSession_DefaultCurrency(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewCheckoutService(mockUserRepo, mockCourseRepo, mockPurchaseRepo, mockGateway, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	course := newTestCourse("49.99", 0)
	user := &entity.User{ID: "user-1", Role: entity.RoleStudent}

	mockUserRepo.EXPECT().FindUserByID(ctx, "user-1").Return(user, nil)
	mockCourseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)
	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.Purchase")).
		Run(func(_ context.Context, purchase *entity.Purchase) {
			assert.Equal(t, "usd", purchase.Currency)
		}).
		Return(nil)
	mockGateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("service.CheckoutSessionParams")).
		Return("https://pay.example.com/session/xyz", nil)

	url, err := svc.CreateCheckoutSession(ctx, usecase.CheckoutInput{
		UserID:   "user-1",
		CourseID: course.ID,
		Origin:   "https://academy.test",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestCheckoutService_CreateCheckoutSession_UnsupportedCurrency(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewCheckoutService(mockUserRepo, mockCourseRepo, mockPurchaseRepo, mockGateway, newTestConfig(), newDiscardLogger())

	url, err := svc.CreateCheckoutSession(context.Background(), usecase.CheckoutInput{
		UserID:   "user-1",
		CourseID: uuid.New(),
		Currency: "jpy",
		Origin:   "https://academy.test",
	})
	assert.Empty(t, url)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CURRENCY", appErr.ErrorCode())
}

func TestCheckoutService_CreateCheckoutSession_MissingOrigin(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewCheckoutService(mockUserRepo, mockCourseRepo, mockPurchaseRepo, mockGateway, newTestConfig(), newDiscardLogger())

	_, err := svc.CreateCheckoutSession(context.Background(), usecase.CheckoutInput{
		UserID:   "user-1",
		CourseID: uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestCheckoutService_CreateCheckoutSession_CourseNotFound(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewCheckoutService(mockUserRepo, mockCourseRepo, mockPurchaseRepo, mockGateway, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	courseID := uuid.New()

	mockUserRepo.EXPECT().FindUserByID(ctx, "user-1").Return(&entity.User{ID: "user-1"}, nil)
	mockCourseRepo.EXPECT().FindCourseByID(ctx, courseID).Return(nil, repository.ErrCourseNotFound)

	_, err := svc.CreateCheckoutSession(ctx, usecase.CheckoutInput{
		UserID:   "user-1",
		CourseID: courseID,
		Currency: "usd",
		Origin:   "https://academy.test",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCheckoutService_CreateCheckoutSession_GatewayFailureKeepsPendingPurchase(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewCheckoutService(mockUserRepo, mockCourseRepo, mockPurchaseRepo, mockGateway, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	course := newTestCourse("30.00", 0)

	mockUserRepo.EXPECT().FindUserByID(ctx, "user-1").Return(&entity.User{ID: "user-1"}, nil)
	mockCourseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)

	var created *entity.Purchase
	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.Purchase")).
		Run(func(_ context.Context, purchase *entity.Purchase) {
			created = purchase
		}).
		Return(nil)

	mockGateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("service.CheckoutSessionParams")).
		Return("", errors.New("provider unreachable"))

	url, err := svc.CreateCheckoutSession(ctx, usecase.CheckoutInput{
		UserID:   "user-1",
		CourseID: course.ID,
		Currency: "usd",
		Origin:   "https://academy.test",
	})
	assert.Empty(t, url)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentProvider)

	// The pending row survives the provider failure for later reconciliation.
	require.NotNil(t, created)
	assert.Equal(t, entity.PurchaseStatusPending, created.Status)
}

func TestCheckoutService_CreateCheckoutSession_EffectivePriceRounding(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockCourseRepo := mockRepo.NewMockCourseRepository(t)
	mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewCheckoutService(mockUserRepo, mockCourseRepo, mockPurchaseRepo, mockGateway, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	course := newTestCourse("49.99", 33)

	mockUserRepo.EXPECT().FindUserByID(ctx, "user-1").Return(&entity.User{ID: "user-1"}, nil)
	mockCourseRepo.EXPECT().FindCourseByID(ctx, course.ID).Return(course, nil)
	mockPurchaseRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.Purchase")).
		Run(func(_ context.Context, purchase *entity.Purchase) {
			assert.Equal(t, "33.49", purchase.Amount.StringFixed(2))
			assert.Equal(t, int64(3349), purchase.MinorUnits())
		}).
		Return(nil)
	mockGateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("service.CheckoutSessionParams")).
		Return("https://pay.example.com/session/rounded", nil)

	_, err := svc.CreateCheckoutSession(ctx, usecase.CheckoutInput{
		UserID:   "user-1",
		CourseID: course.ID,
		Currency: "usd",
		Origin:   "https://academy.test",
	})
	require.NoError(t, err)
}
