// Package mail sends transactional email through SendGrid.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"academy/config"
	"academy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
	logger *slog.Logger
}

// noopMailer is used when mail is not configured, so enrollment flows keep
// working in development without a SendGrid key.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendEnrollmentConfirmation(_ context.Context, mail *service.EnrollmentMail) error {
	m.logger.Debug("[NoopMail] Mail not configured, skipping",
		slog.String("to", mail.ToAddress),
	)

	return nil
}

// NewSendgridMailer creates the Mailer, falling back to a no-op when no API
// key is configured.
func NewSendgridMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.APIKey == "" {
		logger.Info("Mail not configured, using no-op mailer")

		return &noopMailer{logger: logger}
	}

	return &sendgridMailer{
		client: sendgrid.NewSendClient(cfg.Mail.APIKey),
		from:   sgmail.NewEmail(cfg.Mail.FromName, cfg.Mail.FromAddress),
		logger: logger,
	}
}

// SendEnrollmentConfirmation sends the post-purchase confirmation email.
func (m *sendgridMailer) SendEnrollmentConfirmation(ctx context.Context, mail *service.EnrollmentMail) error {
	subject := fmt.Sprintf("You're enrolled in %s", mail.CourseTitle)
	plain := fmt.Sprintf(
		"Hi %s,\n\nYour enrollment in %s is confirmed. We charged %s %s.\n\nHappy learning!",
		mail.ToName, mail.CourseTitle, mail.Amount, strings.ToUpper(mail.Currency),
	)

	message := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail(mail.ToName, mail.ToAddress), plain, "")

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send enrollment confirmation")
	}
	if response.StatusCode >= 400 {
		return errors.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	m.logger.Info("enrollment confirmation sent",
		slog.String("to", mail.ToAddress),
		slog.Int("status", response.StatusCode),
	)

	return nil
}
