package service

import "context"

// EnrollmentMail is the payload for a purchase confirmation email.
type EnrollmentMail struct {
	ToName      string
	ToAddress   string
	CourseTitle string
	Amount      string
	Currency    string
}

// Mailer sends transactional email. Like event publishing this is
// best-effort: a send failure is logged, never propagated to the purchase.
type Mailer interface {
	// SendEnrollmentConfirmation emails the student after a successful purchase.
	SendEnrollmentConfirmation(ctx context.Context, mail *EnrollmentMail) error
}
