// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
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

// supportedCurrencies is the explicit whitelist for checkout requests.
var supportedCurrencies = []string{"usd", "eur", "gbp", "inr"}

const defaultProviderTimeout = 20 * time.Second

// Callback paths appended to the caller-supplied origin.
const (
	successPath = "/loading/my-enrollments"
	cancelPath  = "/"
)

type checkoutService struct {
	userRepo     repository.UserRepository
	courseRepo   repository.CourseRepository
	purchaseRepo repository.PurchaseRepository
	gateway      service.PaymentGateway
	cfg          *config.Config
	logger       *slog.Logger
}

// NewCheckoutService creates the purchase orchestrator.
func NewCheckoutService(
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	purchaseRepo repository.PurchaseRepository,
	gateway service.PaymentGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		userRepo:     userRepo,
		courseRepo:   courseRepo,
		purchaseRepo: purchaseRepo,
		gateway:      gateway,
		cfg:          cfg,
		logger:       logger,
	}
}

// CreateCheckoutSession validates the purchase request, records a pending
// purchase and requests a hosted checkout session from the payment provider.
// The pending row is written BEFORE the provider call so a provider outage
// leaves an auditable record instead of silent data loss.
func (s *checkoutService) CreateCheckoutSession(ctx context.Context, input usecase.CheckoutInput) (string, error) {
	if input.UserID == "" || input.CourseID == uuid.Nil || input.Origin == "" {
		return "", domainerrors.ErrInvalidRequest
	}

	currency, err := s.resolveCurrency(input.Currency)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.FindUserByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find user")
	}

	course, err := s.courseRepo.FindCourseByID(ctx, input.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return "", domainerrors.ErrCourseNotFound
		}

		return "", errors.Wrap(err, "failed to find course")
	}

	if !course.ValidDiscount() {
		return "", errors.Errorf("course %s violates discount invariant: %d", course.ID, course.DiscountPercent)
	}

	// Canonical pricing only: the effective price is derived from the stored
	// course row, never from anything the client sent.
	purchase := &entity.Purchase{
		ID:       uuid.New(),
		CourseID: course.ID,
		UserID:   user.ID,
		Amount:   course.EffectivePrice(),
		Currency: currency,
		Status:   entity.PurchaseStatusPending,
	}

	if err := s.purchaseRepo.CreatePurchase(ctx, purchase); err != nil {
		return "", errors.Wrap(err, "failed to create purchase")
	}

	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout())
	defer cancel()

	redirectURL, err := s.gateway.CreateCheckoutSession(providerCtx, service.CheckoutSessionParams{
		PurchaseID:  purchase.ID,
		CourseTitle: course.Title,
		AmountMinor: purchase.MinorUnits(),
		Currency:    currency,
		SuccessURL:  input.Origin + successPath,
		CancelURL:   input.Origin + cancelPath,
	})
	if err != nil {
		// The purchase stays pending; the sweep job or a late webhook
		// reconciles it.
		s.logger.Error("checkout session creation failed",
			slog.String("purchase_id", purchase.ID.String()),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrPaymentProvider
	}

	return redirectURL, nil
}

// resolveCurrency lowercases and whitelists the requested currency, falling
// back to the configured default when the request carries none.
func (s *checkoutService) resolveCurrency(requested string) (string, error) {
	currency := strings.ToLower(strings.TrimSpace(requested))
	if currency == "" && s.cfg.Payment != nil {
		currency = strings.ToLower(s.cfg.Payment.DefaultCurrency)
	}

	if !slices.Contains(supportedCurrencies, currency) {
		return "", domainerrors.ErrInvalidCurrency.WithDetails("currency: " + currency)
	}

	return currency, nil
}

func (s *checkoutService) providerTimeout() time.Duration {
	if s.cfg.Payment != nil && s.cfg.Payment.RequestTimeout > 0 {
		return s.cfg.Payment.RequestTimeout
	}

	return defaultProviderTimeout
}
