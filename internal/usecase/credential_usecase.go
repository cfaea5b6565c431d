package usecase

import "context"

// CompletePasswordResetInput defines the data required to finish a password reset.
type CompletePasswordResetInput struct {
	Token       string
	NewPassword string
}

// CredentialUsecase defines the interface for the email-verification and
// password-reset workflows. Both follow the same shape: a request step that
// issues a purpose-tagged token and emails it out, and a completion step that
// validates the token and applies the change.
type CredentialUsecase interface {
	// RequestEmailVerification issues a fresh verification token for the
	// account and emails it. Delivery failure is reported but never rolls
	// back the token issuance; the token in the mail simply goes unused.
	RequestEmailVerification(ctx context.Context, email string) error

	// CompleteEmailVerification marks the token's account as verified.
	// Verifying an already-verified account is a no-op, so a re-clicked
	// mail link succeeds instead of erroring.
	CompleteEmailVerification(ctx context.Context, token string) error

	// RequestPasswordReset issues a reset token for the account and emails
	// it. The caller-facing result is identical whether or not the email
	// is registered.
	RequestPasswordReset(ctx context.Context, email string) error

	// CompletePasswordReset validates the reset token, replaces the
	// account's password hash and burns the token. A token can complete at
	// most one reset; replays are rejected.
	CompletePasswordReset(ctx context.Context, input *CompletePasswordResetInput) error
}
