// Package usecase defines the application's use case interfaces and their
// request/response types.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutInput carries a student's request to buy a course. Pricing is
// deliberately absent: the effective price is always recomputed server-side
// from the canonical course row, never taken from a client.
type CheckoutInput struct {
	UserID   string
	CourseID uuid.UUID
	// Currency is an optional display currency; empty falls back to the
	// configured default. Either way it must pass the whitelist.
	Currency string
	// Origin is the caller's site origin, used to derive the success and
	// cancel callback URLs.
	Origin string
}

// CheckoutUsecase is the purchase orchestrator: it validates the request,
// records a pending purchase and requests a hosted checkout session.
type CheckoutUsecase interface {
	// CreateCheckoutSession validates the purchase request, writes a pending
	// purchase and returns the provider's redirect URL.
	CreateCheckoutSession(ctx context.Context, input CheckoutInput) (string, error)
}
