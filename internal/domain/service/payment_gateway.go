// Package service defines interfaces for the external collaborators the use
// case layer talks to: the payment provider, the event bus, the mailer, the
// identity token verifier, blob storage and QR generation.
package service

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutSessionParams describes one hosted checkout session request.
// The purchase ID travels as opaque provider metadata so the webhook
// handler can reconcile the notification without re-deriving anything.
type CheckoutSessionParams struct {
	PurchaseID  uuid.UUID
	CourseTitle string
	// AmountMinor is the charge amount in the currency's minor units
	// (effective price * 100, rounded to an integer).
	AmountMinor int64
	Currency    string
	SuccessURL  string
	CancelURL   string
}

// PaymentOutcome is the reconciled result of a provider notification.
type PaymentOutcome struct {
	PurchaseID uuid.UUID
	Succeeded  bool
}

// PaymentGateway abstracts the hosted payment provider.
type PaymentGateway interface {
	// CreateCheckoutSession requests a hosted checkout session and returns
	// the provider-issued redirect URL. Implementations bound the call with
	// a finite timeout; any network error, rejected request or missing
	// credential surfaces as an error here.
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (string, error)

	// ParseWebhookEvent verifies the provider's signature over the raw
	// webhook payload and extracts the payment outcome. The second return
	// is false for event types that do not affect a purchase (ignored).
	ParseWebhookEvent(payload []byte, signature string) (*PaymentOutcome, bool, error)
}
