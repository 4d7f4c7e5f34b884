package payment

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"academy/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGateway(t *testing.T) *stripeGateway {
	svc, err := NewStripeGateway(&config.Config{
		Payment: &config.PaymentConfig{
			SecretKey:     "sk_test_key",
			WebhookSecret: testWebhookSecret,
		},
	}, newDiscardLogger())
	require.NoError(t, err)

	return svc.(*stripeGateway)
}

func signedPayload(t *testing.T, eventType string, purchaseID uuid.UUID) (payload []byte, header string) {
	payload = []byte(fmt.Sprintf(
		`{"id":"evt_test","api_version":"%s","type":"%s","data":{"object":{"metadata":{"purchaseId":"%s"}}}}`,
		stripe.APIVersion, eventType, purchaseID,
	))

	now := time.Now()
	signature := webhook.ComputeSignature(now, payload, testWebhookSecret)
	header = fmt.Sprintf("t=%d,v1=%x", now.Unix(), signature)

	return payload, header
}

func TestStripeGateway_ParseWebhookEvent_CompletedSession(t *testing.T) {
	gateway := newTestGateway(t)
	purchaseID := uuid.New()

	payload, header := signedPayload(t, "checkout.session.completed", purchaseID)

	outcome, relevant, err := gateway.ParseWebhookEvent(payload, header)
	require.NoError(t, err)
	assert.True(t, relevant)
	assert.Equal(t, purchaseID, outcome.PurchaseID)
	assert.True(t, outcome.Succeeded)
}

func TestStripeGateway_ParseWebhookEvent_ExpiredSession(t *testing.T) {
	gateway := newTestGateway(t)
	purchaseID := uuid.New()

	payload, header := signedPayload(t, "checkout.session.expired", purchaseID)

	outcome, relevant, err := gateway.ParseWebhookEvent(payload, header)
	require.NoError(t, err)
	assert.True(t, relevant)
	assert.Equal(t, purchaseID, outcome.PurchaseID)
	assert.False(t, outcome.Succeeded)
}

func TestStripeGateway_ParseWebhookEvent_IrrelevantEventType(t *testing.T) {
	gateway := newTestGateway(t)

	payload, header := signedPayload(t, "invoice.paid", uuid.New())

	outcome, relevant, err := gateway.ParseWebhookEvent(payload, header)
	require.NoError(t, err)
	assert.False(t, relevant)
	assert.Nil(t, outcome)
}

func TestStripeGateway_ParseWebhookEvent_BadSignature(t *testing.T) {
	gateway := newTestGateway(t)

	payload, _ := signedPayload(t, "checkout.session.completed", uuid.New())

	_, _, err := gateway.ParseWebhookEvent(payload, "t=1,v1=deadbeef")
	assert.Error(t, err)
}

func TestStripeGateway_ParseWebhookEvent_MissingPurchaseMetadata(t *testing.T) {
	gateway := newTestGateway(t)

	payload := []byte(fmt.Sprintf(
		`{"id":"evt_test","api_version":"%s","type":"checkout.session.completed","data":{"object":{"metadata":{}}}}`,
		stripe.APIVersion,
	))
	now := time.Now()
	signature := webhook.ComputeSignature(now, payload, testWebhookSecret)
	header := fmt.Sprintf("t=%d,v1=%x", now.Unix(), signature)

	_, _, err := gateway.ParseWebhookEvent(payload, header)
	assert.Error(t, err)
}

func TestNewStripeGateway_RequiresCredentials(t *testing.T) {
	_, err := NewStripeGateway(&config.Config{}, newDiscardLogger())
	assert.Error(t, err)

	_, err = NewStripeGateway(&config.Config{
		Payment: &config.PaymentConfig{SecretKey: "sk_test_key"},
	}, newDiscardLogger())
	assert.Error(t, err)
}
