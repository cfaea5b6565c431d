package service

import "context"

// MailSender delivers workflow emails (verification links, reset links).
// Delivery is best-effort: a send failure is reported to the caller but never
// invalidates the token embedded in the message.
type MailSender interface {
	// Send delivers a message to the recipient address.
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}
