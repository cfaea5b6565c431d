package impl

import (
	"context"
	"testing"

	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/service"
	"fleetcheck/internal/infra/auth"
	"fleetcheck/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentialServiceFixtures struct {
	service      usecase.CredentialUsecase
	accountRepo  *fakeAccountRepo
	tokenRepo    *fakeConsumedTokenRepo
	mailSender   *fakeMailSender
	tokenService service.TokenService
}

func createTestCredentialService(t *testing.T, accounts ...*entity.Account) credentialServiceFixtures {
	t.Helper()

	tokenService, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	accountRepo := newFakeAccountRepo(accounts...)
	tokenRepo := newFakeConsumedTokenRepo()
	mailSender := &fakeMailSender{}
	txManager := newFakeTxManager(&fakeRepoFactory{
		accountRepo:       accountRepo,
		consumedTokenRepo: tokenRepo,
	})

	svc := NewCredentialService(CredentialServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       &fakeHasher{},
		TokenService: tokenService,
		MailSender:   mailSender,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return credentialServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		tokenRepo:    tokenRepo,
		mailSender:   mailSender,
		tokenService: tokenService,
	}
}

func unverifiedAccount(email string) *entity.Account {
	return &entity.Account{
		Email:        email,
		PasswordHash: "hashed:original",
		Role:         entity.RoleUser,
		Verified:     false,
	}
}

func TestCredentialService_EmailVerification_FullFlow(t *testing.T) {
	f := createTestCredentialService(t, unverifiedAccount("new@fleet.test"))

	require.NoError(t, f.service.RequestEmailVerification(context.Background(), "new@fleet.test"))
	require.Len(t, f.mailSender.recipients, 1)
	assert.Equal(t, "new@fleet.test", f.mailSender.recipients[0])
	assert.True(t, f.mailSender.lastBodyContains("https://fleetcheck.test/verify"))

	token, err := f.tokenService.IssueEmailVerification("new@fleet.test")
	require.NoError(t, err)

	require.NoError(t, f.service.CompleteEmailVerification(context.Background(), token))
	assert.True(t, f.accountRepo.accounts["new@fleet.test"].Verified)
}

func TestCredentialService_EmailVerification_ReplayIsNoOp(t *testing.T) {
	f := createTestCredentialService(t, unverifiedAccount("new@fleet.test"))

	token, err := f.tokenService.IssueEmailVerification("new@fleet.test")
	require.NoError(t, err)

	require.NoError(t, f.service.CompleteEmailVerification(context.Background(), token))
	// Re-clicking the mail link must not error.
	require.NoError(t, f.service.CompleteEmailVerification(context.Background(), token))
	assert.True(t, f.accountRepo.accounts["new@fleet.test"].Verified)
}

func TestCredentialService_EmailVerification_RejectsSessionToken(t *testing.T) {
	account := unverifiedAccount("new@fleet.test")
	f := createTestCredentialService(t, account)

	sessionToken, err := f.tokenService.IssueSession(account)
	require.NoError(t, err)

	err = f.service.CompleteEmailVerification(context.Background(), sessionToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenPurposeMismatch))
	assert.False(t, f.accountRepo.accounts["new@fleet.test"].Verified)
}

func TestCredentialService_RequestForUnknownEmail_SilentlySucceeds(t *testing.T) {
	f := createTestCredentialService(t)

	assert.NoError(t, f.service.RequestEmailVerification(context.Background(), "nobody@fleet.test"))
	assert.NoError(t, f.service.RequestPasswordReset(context.Background(), "nobody@fleet.test"))
	assert.Empty(t, f.mailSender.recipients)
}

func TestCredentialService_Request_DeliveryFailureKeepsTokenValid(t *testing.T) {
	f := createTestCredentialService(t, unverifiedAccount("new@fleet.test"))
	f.mailSender.sendErr = domainerrors.ErrDeliveryFailed.WrapMessage("smtp down")

	err := f.service.RequestEmailVerification(context.Background(), "new@fleet.test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryFailed))

	// A token issued out-of-band during the failed request still verifies.
	token, err := f.tokenService.IssueEmailVerification("new@fleet.test")
	require.NoError(t, err)
	require.NoError(t, f.service.CompleteEmailVerification(context.Background(), token))
}

func TestCredentialService_PasswordReset_FullFlow(t *testing.T) {
	account := unverifiedAccount("user@fleet.test")
	account.Verified = true
	f := createTestCredentialService(t, account)

	require.NoError(t, f.service.RequestPasswordReset(context.Background(), "user@fleet.test"))
	require.Len(t, f.mailSender.recipients, 1)

	token, err := f.tokenService.IssuePasswordReset("user@fleet.test")
	require.NoError(t, err)

	require.NoError(t, f.service.CompletePasswordReset(context.Background(), &usecase.CompletePasswordResetInput{
		Token:       token,
		NewPassword: "brand-new-password",
	}))

	assert.Equal(t, "hashed:brand-new-password", f.accountRepo.accounts["user@fleet.test"].PasswordHash)
}

func TestCredentialService_PasswordReset_TokenIsSingleUse(t *testing.T) {
	account := unverifiedAccount("user@fleet.test")
	f := createTestCredentialService(t, account)

	token, err := f.tokenService.IssuePasswordReset("user@fleet.test")
	require.NoError(t, err)

	require.NoError(t, f.service.CompletePasswordReset(context.Background(), &usecase.CompletePasswordResetInput{
		Token:       token,
		NewPassword: "first-password",
	}))

	err = f.service.CompletePasswordReset(context.Background(), &usecase.CompletePasswordResetInput{
		Token:       token,
		NewPassword: "second-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenAlreadyUsed))

	// The replay must not have touched the hash again.
	assert.Equal(t, "hashed:first-password", f.accountRepo.accounts["user@fleet.test"].PasswordHash)
}

func TestCredentialService_PasswordReset_DistinctTokensAreIndependent(t *testing.T) {
	f := createTestCredentialService(t, unverifiedAccount("user@fleet.test"))

	first, err := f.tokenService.IssuePasswordReset("user@fleet.test")
	require.NoError(t, err)
	second, err := f.tokenService.IssuePasswordReset("user@fleet.test")
	require.NoError(t, err)

	require.NoError(t, f.service.CompletePasswordReset(context.Background(), &usecase.CompletePasswordResetInput{
		Token:       first,
		NewPassword: "pw-one",
	}))

	// A separately issued token carries its own jti and is still redeemable.
	require.NoError(t, f.service.CompletePasswordReset(context.Background(), &usecase.CompletePasswordResetInput{
		Token:       second,
		NewPassword: "pw-two",
	}))

	assert.Equal(t, "hashed:pw-two", f.accountRepo.accounts["user@fleet.test"].PasswordHash)
}

func TestCredentialService_PasswordReset_RejectsVerificationToken(t *testing.T) {
	f := createTestCredentialService(t, unverifiedAccount("user@fleet.test"))

	token, err := f.tokenService.IssueEmailVerification("user@fleet.test")
	require.NoError(t, err)

	err = f.service.CompletePasswordReset(context.Background(), &usecase.CompletePasswordResetInput{
		Token:       token,
		NewPassword: "sneaky",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenPurposeMismatch))
	assert.Equal(t, "hashed:original", f.accountRepo.accounts["user@fleet.test"].PasswordHash)
}

func TestCredentialService_PasswordReset_AccountGone(t *testing.T) {
	f := createTestCredentialService(t)

	token, err := f.tokenService.IssuePasswordReset("ghost@fleet.test")
	require.NoError(t, err)

	err = f.service.CompletePasswordReset(context.Background(), &usecase.CompletePasswordResetInput{
		Token:       token,
		NewPassword: "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
