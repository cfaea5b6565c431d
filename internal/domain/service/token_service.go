package service

import (
	"time"

	"fleetcheck/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by every signed token.
type Claims struct {
	// Purpose discriminates session, email-verification and password-reset
	// tokens. Validate always checks it against the caller's expectation.
	Purpose entity.TokenPurpose `json:"purpose"`

	// Role is set on session tokens only, for stateless role checks at the
	// delivery layer.
	Role entity.Role `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// AccountEmail returns the subject, the account email the token was issued for.
func (c *Claims) AccountEmail() string {
	return c.RegisteredClaims.Subject
}

// TokenID returns the token's unique jti claim.
func (c *Claims) TokenID() string {
	return c.RegisteredClaims.ID
}

// Expiry returns the token's expiry time.
func (c *Claims) Expiry() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}

	return c.RegisteredClaims.ExpiresAt.Time
}

// TokenService defines the interface for generating and validating signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueSession creates a session token for an account, embedding the
	// role for stateless authorization.
	IssueSession(account *entity.Account) (string, error)

	// IssueEmailVerification creates an email-verification token for the
	// given account email.
	IssueEmailVerification(email string) (string, error)

	// IssuePasswordReset creates a password-reset token for the given
	// account email.
	IssuePasswordReset(email string) (string, error)

	// Validate checks signature, expiry and purpose of a token string.
	// Attacker-supplied garbage yields a typed error, never a panic.
	Validate(tokenString string, expected entity.TokenPurpose) (*Claims, error)
}
