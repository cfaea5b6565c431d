// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fleetcheck/config"
	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Every token purpose is signed with the same process-wide secret; purposes
// are kept apart by the purpose claim, which Validate always enforces.
type jwtService struct {
	signingKey      []byte
	sessionTTL      time.Duration
	verificationTTL time.Duration
	resetTTL        time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		signingKey:      []byte(cfg.SecretKey.Signing),
		sessionTTL:      cfg.SessionTTL(),
		verificationTTL: cfg.VerificationTTL(),
		resetTTL:        cfg.ResetTTL(),
	}, nil
}

// IssueSession creates a session token carrying the account's role.
func (s *jwtService) IssueSession(account *entity.Account) (string, error) {
	return s.issue(account.Email, entity.PurposeSession, account.Role, s.sessionTTL)
}

// IssueEmailVerification creates an email-verification token.
func (s *jwtService) IssueEmailVerification(email string) (string, error) {
	return s.issue(email, entity.PurposeEmailVerification, "", s.verificationTTL)
}

// IssuePasswordReset creates a password-reset token.
func (s *jwtService) IssuePasswordReset(email string) (string, error) {
	return s.issue(email, entity.PurposePasswordReset, "", s.resetTTL)
}

// Validate checks the signature, expiry and purpose of a token string.
func (s *jwtService) Validate(tokenString string, expected entity.TokenPurpose) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token validation failed")
		}

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("failed to parse token claims")
	}

	if claims.Purpose != expected {
		return nil, domainerrors.ErrTokenPurposeMismatch.WrapMessage(
			"expected " + expected.String() + " token, got " + claims.Purpose.String())
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token has no subject")
	}

	return claims, nil
}

// issue is a private helper to create a JWT with the shared claim shape.
func (s *jwtService) issue(subject string, purpose entity.TokenPurpose, role entity.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Purpose: purpose,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
