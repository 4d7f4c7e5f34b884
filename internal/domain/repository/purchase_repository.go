package repository

import (
	"context"
	"time"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrPurchaseNotFound is returned when a purchase does not exist in the store.
var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepository manages purchase records. A purchase's amount is
// immutable after creation; only the status field ever changes, and only
// through the conditional transition below.
type PurchaseRepository interface {
	// CreatePurchase persists a new purchase in the pending state.
	CreatePurchase(ctx context.Context, purchase *entity.Purchase) error

	// FindPurchaseByID retrieves a purchase by ID.
	FindPurchaseByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// TransitionFromPending atomically moves the purchase from pending to the
	// given terminal status using a conditional write. It reports false
	// without error when the purchase is already in a terminal state, which
	// is how duplicate webhook deliveries are made idempotent.
	TransitionFromPending(ctx context.Context, id uuid.UUID, to entity.PurchaseStatus) (bool, error)

	// FailStalePending marks purchases that have been pending for longer
	// than maxAge as failed, returning how many rows were transitioned.
	FailStalePending(ctx context.Context, maxAge time.Duration) (int64, error)

	// SumCompletedByEducator totals the completed purchase amounts across
	// all of the educator's courses, for the dashboard.
	SumCompletedByEducator(ctx context.Context, educatorID string) (decimal.Decimal, error)
}
