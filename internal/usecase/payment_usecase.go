package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PaymentUsecase reconciles payment-provider notifications with purchases.
type PaymentUsecase interface {
	// ConfirmPayment transitions the purchase to its terminal state and, on
	// success, enrolls the student. The operation is idempotent: redelivered
	// notifications for an already-terminal purchase are a no-op success,
	// and the status transition plus the enrollment insert commit in one
	// database transaction.
	ConfirmPayment(ctx context.Context, purchaseID uuid.UUID, succeeded bool) error

	// ExpireStalePending fails purchases that have been pending longer than
	// the configured age, returning how many were transitioned. Run by the
	// sweep job.
	ExpireStalePending(ctx context.Context) (int64, error)
}
