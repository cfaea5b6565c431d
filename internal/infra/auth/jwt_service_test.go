package auth

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetcheck/config"
	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = "test_signing_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_SessionRoundTrip(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	account := &entity.Account{Email: "a@x.com", Role: entity.RoleSupervisor, Verified: true}

	token, err := svc.IssueSession(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token, entity.PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.AccountEmail())
	assert.Equal(t, entity.RoleSupervisor, claims.Role)
	assert.Equal(t, entity.PurposeSession, claims.Purpose)
	assert.NotEmpty(t, claims.TokenID())
	assert.True(t, claims.Expiry().After(time.Now()))
}

func TestJWTService_RejectsMissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_PurposeMismatch(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	// A session token must never be accepted where a password-reset token
	// is expected, and vice versa.
	sessionToken, err := svc.IssueSession(&entity.Account{Email: "a@x.com", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = svc.Validate(sessionToken, entity.PurposePasswordReset)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenPurposeMismatch))

	resetToken, err := svc.IssuePasswordReset("a@x.com")
	require.NoError(t, err)

	_, err = svc.Validate(resetToken, entity.PurposeSession)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenPurposeMismatch))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		signingKey: []byte("test_signing_secret_key_very_long_for_testing"),
		resetTTL:   -time.Minute, // already expired at issuance
	}

	token, err := svc.IssuePasswordReset("a@x.com")
	require.NoError(t, err)

	_, err = svc.Validate(token, entity.PurposePasswordReset)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, err = svc.Validate("clearly-not-a-jwt", entity.PurposeSession)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_WrongKeySignature(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Signing = "a_completely_different_signing_secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.IssueEmailVerification("a@x.com")
	require.NoError(t, err)

	_, err = svc.Validate(token, entity.PurposeEmailVerification)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
