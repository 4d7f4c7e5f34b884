package service

import (
	"context"
)

// EnrollmentEvent is published after a purchase reaches the completed state
// and the enrollment row is committed. Consumers (analytics, CRM sync) are
// outside this service.
type EnrollmentEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	PurchaseID string `json:"purchase_id"`
	CourseID   string `json:"course_id"`
	UserID     string `json:"user_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
}

// EventPublisher defines the interface for publishing events to a message bus.
// Publishing is best-effort side-channel work: a publish failure is logged
// and never rolls back the purchase.
type EventPublisher interface {
	// PublishEnrollmentEvent publishes an enrollment event for async processing
	PublishEnrollmentEvent(ctx context.Context, event *EnrollmentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
