package impl

import (
	"context"
	"log/slog"
	"time"

	"academy/config"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultMaxPendingAge = 24 * time.Hour

type paymentService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	courseRepo repository.CourseRepository
	publisher  service.EventPublisher
	mailer     service.Mailer
	cfg        *config.Config
	logger     *slog.Logger
}

// NewPaymentService creates the payment confirmation handler.
func NewPaymentService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	publisher service.EventPublisher,
	mailer service.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		txManager:  txManager,
		userRepo:   userRepo,
		courseRepo: courseRepo,
		publisher:  publisher,
		mailer:     mailer,
		cfg:        cfg,
		logger:     logger,
	}
}

// ConfirmPayment reconciles one provider notification with exactly one
// purchase. The pending->terminal transition is a conditional write and
// commits in the same transaction as the enrollment insert, so a redelivered
// notification can never double-enroll and a partial failure rolls back both
// mutations.
func (s *paymentService) ConfirmPayment(ctx context.Context, purchaseID uuid.UUID, succeeded bool) error {
	if purchaseID == uuid.Nil {
		return domainerrors.ErrInvalidRequest
	}

	target := entity.PurchaseStatusFailed
	if succeeded {
		target = entity.PurchaseStatusCompleted
	}

	var purchase *entity.Purchase
	var transitioned bool

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		purchaseRepo := f.NewPurchaseRepository()

		found, err := purchaseRepo.FindPurchaseByID(ctx, purchaseID)
		if err != nil {
			if errors.Is(err, repository.ErrPurchaseNotFound) {
				return domainerrors.ErrPurchaseNotFound
			}

			return errors.Wrap(err, "failed to find purchase")
		}
		purchase = found

		transitioned, err = purchaseRepo.TransitionFromPending(ctx, purchaseID, target)
		if err != nil {
			return errors.Wrap(err, "failed to transition purchase status")
		}

		if !transitioned {
			// Already terminal: duplicate delivery, no-op success.
			return nil
		}

		if succeeded {
			if err := f.NewEnrollmentRepository().Enroll(ctx, purchase.UserID, purchase.CourseID); err != nil {
				return errors.Wrap(err, "failed to enroll user")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if !transitioned {
		s.logger.Info("duplicate payment notification ignored",
			slog.String("purchase_id", purchaseID.String()),
		)

		return nil
	}

	purchase.Status = target

	if succeeded {
		s.notifyEnrollment(ctx, purchase)
	}

	return nil
}

// ExpireStalePending fails purchases that have sat pending for longer than
// the configured age. It reuses the same conditional transition as the
// webhook path, so a late webhook and the sweeper cannot both win.
func (s *paymentService) ExpireStalePending(ctx context.Context) (int64, error) {
	maxAge := defaultMaxPendingAge
	if s.cfg.Sweeper != nil && s.cfg.Sweeper.MaxPendingAge > 0 {
		maxAge = s.cfg.Sweeper.MaxPendingAge
	}

	var swept int64
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		n, err := f.NewPurchaseRepository().FailStalePending(ctx, maxAge)
		if err != nil {
			return errors.Wrap(err, "failed to fail stale pending purchases")
		}
		swept = n

		return nil
	})
	if err != nil {
		return 0, err
	}

	return swept, nil
}

// notifyEnrollment publishes the enrollment event and sends the confirmation
// email. Both are best-effort: the purchase is already committed, so
// failures here are logged and never surfaced.
func (s *paymentService) notifyEnrollment(ctx context.Context, purchase *entity.Purchase) {
	event := &service.EnrollmentEvent{
		PurchaseID: purchase.ID.String(),
		CourseID:   purchase.CourseID.String(),
		UserID:     purchase.UserID,
		Amount:     purchase.Amount.StringFixed(2),
		Currency:   purchase.Currency,
	}
	if err := s.publisher.PublishEnrollmentEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish enrollment event",
			slog.String("purchase_id", purchase.ID.String()),
			slog.Any("error", err),
		)
	}

	user, err := s.userRepo.FindUserByID(ctx, purchase.UserID)
	if err != nil {
		s.logger.Error("failed to load user for enrollment mail",
			slog.String("user_id", purchase.UserID),
			slog.Any("error", err),
		)

		return
	}

	course, err := s.courseRepo.FindCourseByID(ctx, purchase.CourseID)
	if err != nil {
		s.logger.Error("failed to load course for enrollment mail",
			slog.String("course_id", purchase.CourseID.String()),
			slog.Any("error", err),
		)

		return
	}

	mail := &service.EnrollmentMail{
		ToName:      user.Name,
		ToAddress:   user.Email,
		CourseTitle: course.Title,
		Amount:      purchase.Amount.StringFixed(2),
		Currency:    purchase.Currency,
	}
	if err := s.mailer.SendEnrollmentConfirmation(ctx, mail); err != nil {
		s.logger.Error("failed to send enrollment confirmation",
			slog.String("purchase_id", purchase.ID.String()),
			slog.Any("error", err),
		)
	}
}
