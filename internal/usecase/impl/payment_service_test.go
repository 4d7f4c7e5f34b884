package impl

import (
	"context"
	"testing"
	"time"

	"academy/config"
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

type paymentServiceFixture struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	purchaseRepo   *mockRepo.MockPurchaseRepository
	enrollmentRepo *mockRepo.MockEnrollmentRepository
	userRepo       *mockRepo.MockUserRepository
	courseRepo     *mockRepo.MockCourseRepository
	publisher      *mockSvc.MockEventPublisher
	mailer         *mockSvc.MockMailer
}

func newPaymentServiceFixture(t *testing.T) *paymentServiceFixture {
	return &paymentServiceFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		purchaseRepo:   mockRepo.NewMockPurchaseRepository(t),
		enrollmentRepo: mockRepo.NewMockEnrollmentRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		courseRepo:     mockRepo.NewMockCourseRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		mailer:         mockSvc.NewMockMailer(t),
	}
}

// expectTransaction routes Execute through the mock factory so the callback
// sees the fixture's repositories.
func (f *paymentServiceFixture) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func (f *paymentServiceFixture) service(cfg *config.Config) usecase.PaymentUsecase {
	return NewPaymentService(f.txManager, f.userRepo, f.courseRepo, f.publisher, f.mailer, cfg, newDiscardLogger())
}

func newPendingPurchase() *entity.Purchase {
	return &entity.Purchase{
		ID:       uuid.New(),
		CourseID: uuid.New(),
		UserID:   "user-1",
		Amount:   decimal.RequireFromString("80.00"),
		Currency: "usd",
		Status:   entity.PurchaseStatusPending,
	}
}

func TestPaymentService_ConfirmPayment_SuccessEnrollsAndNotifies(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(newTestConfig())

	ctx := context.Background()
	purchase := newPendingPurchase()
	user := &entity.User{ID: "user-1", Name: "Ada", Email: "ada@example.com"}
	course := &entity.Course{ID: purchase.CourseID, Title: "Distributed Systems"}

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchaseRepo)
	f.factory.EXPECT().NewEnrollmentRepository().Return(f.enrollmentRepo)

	f.purchaseRepo.EXPECT().FindPurchaseByID(ctx, purchase.ID).Return(purchase, nil)
	f.purchaseRepo.EXPECT().
		TransitionFromPending(ctx, purchase.ID, entity.PurchaseStatusCompleted).
		Return(true, nil)
	f.enrollmentRepo.EXPECT().Enroll(ctx, "user-1", purchase.CourseID).Return(nil)

	f.publisher.EXPECT().
		PublishEnrollmentEvent(ctx, mock.AnythingOfType("*service.EnrollmentEvent")).
		Run(func(_ context.Context, event *service.EnrollmentEvent) {
			assert.Equal(t, purchase.ID.String(), event.PurchaseID)
			assert.Equal(t, "80.00", event.Amount)
			assert.Equal(t, "usd", event.Currency)
		}).
		Return(nil)
	f.userRepo.EXPECT().FindUserByID(ctx, "user-1").Return(user, nil)
	f.courseRepo.EXPECT().FindCourseByID(ctx, purchase.CourseID).Return(course, nil)
	f.mailer.EXPECT().
		SendEnrollmentConfirmation(ctx, mock.AnythingOfType("*service.EnrollmentMail")).
		Run(func(_ context.Context, mail *service.EnrollmentMail) {
			assert.Equal(t, "ada@example.com", mail.ToAddress)
			assert.Equal(t, "Distributed Systems", mail.CourseTitle)
		}).
		Return(nil)

	err := svc.ConfirmPayment(ctx, purchase.ID, true)
	require.NoError(t, err)
}

func TestPaymentService_ConfirmPayment_DuplicateDeliveryIsNoOp(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(newTestConfig())

	ctx := context.Background()
	purchase := newPendingPurchase()
	purchase.Status = entity.PurchaseStatusCompleted

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchaseRepo)

	f.purchaseRepo.EXPECT().FindPurchaseByID(ctx, purchase.ID).Return(purchase, nil)
	f.purchaseRepo.EXPECT().
		TransitionFromPending(ctx, purchase.ID, entity.PurchaseStatusCompleted).
		Return(false, nil)

	// No enrollment, no event, no mail: the redelivery must be a silent success.
	err := svc.ConfirmPayment(ctx, purchase.ID, true)
	require.NoError(t, err)
}

func TestPaymentService_ConfirmPayment_FailureSkipsEnrollment(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(newTestConfig())

	ctx := context.Background()
	purchase := newPendingPurchase()

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchaseRepo)

	f.purchaseRepo.EXPECT().FindPurchaseByID(ctx, purchase.ID).Return(purchase, nil)
	f.purchaseRepo.EXPECT().
		TransitionFromPending(ctx, purchase.ID, entity.PurchaseStatusFailed).
		Return(true, nil)

	err := svc.ConfirmPayment(ctx, purchase.ID, false)
	require.NoError(t, err)
}

func TestPaymentService_ConfirmPayment_PurchaseNotFound(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(newTestConfig())

	ctx := context.Background()
	purchaseID := uuid.New()

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchaseRepo)
	f.purchaseRepo.EXPECT().FindPurchaseByID(ctx, purchaseID).Return(nil, repository.ErrPurchaseNotFound)

	err := svc.ConfirmPayment(ctx, purchaseID, true)
	assert.ErrorIs(t, err, domainerrors.ErrPurchaseNotFound)
}

func TestPaymentService_ConfirmPayment_NilPurchaseID(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(newTestConfig())

	err := svc.ConfirmPayment(context.Background(), uuid.Nil, true)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestPaymentService_ConfirmPayment_EnrollFailureRollsBack(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(newTestConfig())

	ctx := context.Background()
	purchase := newPendingPurchase()

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchaseRepo)
	f.factory.EXPECT().NewEnrollmentRepository().Return(f.enrollmentRepo)

	f.purchaseRepo.EXPECT().FindPurchaseByID(ctx, purchase.ID).Return(purchase, nil)
	f.purchaseRepo.EXPECT().
		TransitionFromPending(ctx, purchase.ID, entity.PurchaseStatusCompleted).
		Return(true, nil)
	f.enrollmentRepo.EXPECT().
		Enroll(ctx, "user-1", purchase.CourseID).
		Return(errors.New("insert failed"))

	err := svc.ConfirmPayment(ctx, purchase.ID, true)
	assert.Error(t, err)
}

func TestPaymentService_ConfirmPayment_NotificationFailuresAreBestEffort(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(newTestConfig())

	ctx := context.Background()
	purchase := newPendingPurchase()

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchaseRepo)
	f.factory.EXPECT().NewEnrollmentRepository().Return(f.enrollmentRepo)

	f.purchaseRepo.EXPECT().FindPurchaseByID(ctx, purchase.ID).Return(purchase, nil)
	f.purchaseRepo.EXPECT().
		TransitionFromPending(ctx, purchase.ID, entity.PurchaseStatusCompleted).
		Return(true, nil)
	f.enrollmentRepo.EXPECT().Enroll(ctx, "user-1", purchase.CourseID).Return(nil)

	f.publisher.EXPECT().
		PublishEnrollmentEvent(ctx, mock.AnythingOfType("*service.EnrollmentEvent")).
		Return(errors.New("broker down"))
	f.userRepo.EXPECT().FindUserByID(ctx, "user-1").Return(nil, errors.New("db down"))

	// The purchase is already committed; side-channel failures never surface.
	err := svc.ConfirmPayment(ctx, purchase.ID, true)
	require.NoError(t, err)
}

func TestPaymentService_ExpireStalePending_DefaultAge(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(&config.Config{})

	ctx := context.Background()

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchaseRepo)
	f.purchaseRepo.EXPECT().FailStalePending(ctx, 24*time.Hour).Return(int64(3), nil)

	swept, err := svc.ExpireStalePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), swept)
}

func TestPaymentService_ExpireStalePending_ConfiguredAge(t *testing.T) {
	f := newPaymentServiceFixture(t)
	svc := f.service(&config.Config{
		Sweeper: &config.SweeperConfig{MaxPendingAge: 2 * time.Hour},
	})

	ctx := context.Background()

	f.expectTransaction(ctx)
	f.factory.EXPECT().NewPurchaseRepository().Return(f.purchaseRepo)
	f.purchaseRepo.EXPECT().FailStalePending(ctx, 2*time.Hour).Return(int64(0), nil)

	swept, err := svc.ExpireStalePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), swept)
}
