// Package payment implements the hosted checkout gateway on Stripe.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"

	"academy/config"
	"academy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// metadataPurchaseID is the metadata key carrying the purchase ID through
// the checkout session and back on the webhook.
const metadataPurchaseID = "purchaseId"

type stripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.SecretKey == "" {
		return nil, errors.New("payment secret key must be provided")
	}
	if cfg.Payment.WebhookSecret == "" {
		return nil, errors.New("payment webhook secret must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Payment.SecretKey, nil)

	return &stripeGateway{
		api:           api,
		webhookSecret: cfg.Payment.WebhookSecret,
		logger:        logger,
	}, nil
}

// CreateCheckoutSession requests a hosted checkout session for the purchase.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, params service.CheckoutSessionParams) (string, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(params.Currency),
					UnitAmount: stripe.Int64(params.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.CourseTitle),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	sessionParams.Context = ctx
	sessionParams.AddMetadata(metadataPurchaseID, params.PurchaseID.String())

	session, err := g.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return "", errors.Wrap(err, "failed to create checkout session")
	}

	g.logger.Info("checkout session created",
		slog.String("purchase_id", params.PurchaseID.String()),
		slog.String("session_id", session.ID),
	)

	return session.URL, nil
}

// ParseWebhookEvent verifies the signature over the raw payload and maps the
// event to a payment outcome. Event types that do not settle a purchase are
// reported as not relevant rather than as errors.
func (g *stripeGateway) ParseWebhookEvent(payload []byte, signature string) (*service.PaymentOutcome, bool, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to verify webhook signature")
	}

	var succeeded bool
	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		succeeded = true
	case stripe.EventTypeCheckoutSessionExpired,
		stripe.EventTypeCheckoutSessionAsyncPaymentFailed:
		succeeded = false
	default:
		g.logger.Debug("ignoring webhook event", slog.String("type", string(event.Type)))

		return nil, false, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, false, errors.Wrap(err, "failed to parse checkout session payload")
	}

	rawID, ok := session.Metadata[metadataPurchaseID]
	if !ok || rawID == "" {
		return nil, false, errors.New("webhook session missing purchase metadata")
	}

	purchaseID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to parse purchase id metadata")
	}

	return &service.PaymentOutcome{
		PurchaseID: purchaseID,
		Succeeded:  succeeded,
	}, true, nil
}
