// Package mail implements the MailSender domain service over SMTP.
package mail

import (
	"context"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"fleetcheck/config"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/service"
)

// smtpSender sends workflow emails through a configured SMTP relay.
type smtpSender struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender. With no SMTP section in
// the config it degrades to a logging no-op sender, which keeps local
// development working without a relay.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) service.MailSender {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return &logSender{logger: logger}
	}

	return &smtpSender{cfg: cfg.SMTP, logger: logger}
}

// Send delivers a single HTML message to the recipient.
func (s *smtpSender) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return domainerrors.ErrDeliveryFailed.WrapMessage("invalid sender address")
	}
	if err := msg.To(recipient); err != nil {
		return domainerrors.ErrDeliveryFailed.WrapMessage("invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return domainerrors.ErrDeliveryFailed.WrapMessage(err.Error())
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.Warn("SMTP delivery failed", slog.String("recipient", recipient), slog.Any("error", err))

		return domainerrors.ErrDeliveryFailed.WrapMessage(err.Error())
	}

	return nil
}

// logSender writes the message to the log instead of delivering it.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(_ context.Context, recipient, subject, _ string) error {
	s.logger.Info("SMTP not configured, skipping mail delivery",
		slog.String("recipient", recipient),
		slog.String("subject", subject),
	)

	return nil
}
