// Package entity contains the core business objects of the project.
package entity

import "time"

// TokenPurpose discriminates what a signed token was issued for. Verification
// always checks the purpose, so a leaked password-reset token can never be
// replayed as a session token or vice versa.
type TokenPurpose string

const (
	// PurposeSession marks a short-lived login session token.
	PurposeSession TokenPurpose = "session"
	// PurposeEmailVerification marks a token that completes the
	// email-verification handshake.
	PurposeEmailVerification TokenPurpose = "email_verification"
	// PurposePasswordReset marks a single-use password-reset token.
	PurposePasswordReset TokenPurpose = "password_reset"
)

// String returns the string representation of the TokenPurpose.
func (p TokenPurpose) String() string {
	return string(p)
}

// IsValid checks if the TokenPurpose is a valid value.
func (p TokenPurpose) IsValid() bool {
	switch p {
	case PurposeSession, PurposeEmailVerification, PurposePasswordReset:
		return true
	default:
		return false
	}
}

// ConsumedToken records a single-use token that has already been redeemed,
// keyed by the token's unique ID claim. Rows become prunable once ExpiresAt
// has passed, since the token itself is rejected as expired from then on.
type ConsumedToken struct {
	TokenID    string    // The jti claim of the consumed token.
	ExpiresAt  time.Time // The consumed token's own expiry; bounds how long the row matters.
	ConsumedAt time.Time // Timestamp of when the token was redeemed.
}
