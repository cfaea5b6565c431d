package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fleetcheck/config"
	deliverycontext "fleetcheck/internal/delivery/context"
	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/domain/service"
	"fleetcheck/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface. It drives the
// email-verification and password-reset workflows end to end: issue a
// purpose-tagged token, hand it to the mail sender, and later validate and
// apply the completion.
type credentialService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailSender    service.MailSender
	verifyBaseURL string
	logger        *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	verifyBaseURL := ""
	if params.Config != nil && params.Config.Auth != nil {
		verifyBaseURL = params.Config.Auth.VerifyBaseURL
	}

	return &credentialService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailSender:    params.MailSender,
		verifyBaseURL: verifyBaseURL,
		logger:        params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestEmailVerification issues a verification token and emails it.
func (srv *credentialService) RequestEmailVerification(ctx context.Context, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Respond identically for unknown addresses.
			srv.log(ctx).Warn("Verification requested for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to find account for verification request")
	}

	if account.Verified {
		srv.log(ctx).Debug("Verification requested for already verified account", slog.String("email", email))

		return nil
	}

	token, err := srv.tokenService.IssueEmailVerification(account.Email)
	if err != nil {
		return errors.Wrap(err, "failed to issue verification token")
	}

	subject := "Verify your email address"
	body := fmt.Sprintf(
		"<p>Welcome! Please confirm your email address by opening the link below.</p><p><a href=%q>%s</a></p><p>The link is valid for 24 hours.</p>",
		srv.verifyLink(token), srv.verifyLink(token),
	)

	if err := srv.mailSender.Send(ctx, account.Email, subject, body); err != nil {
		// The token stays valid for its TTL; only the delivery is reported.
		srv.log(ctx).Warn("Verification email delivery failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "verification email delivery failed")
	}

	srv.log(ctx).Info("Verification email sent", slog.String("email", email))

	return nil
}

// CompleteEmailVerification marks the token's account as verified.
func (srv *credentialService) CompleteEmailVerification(ctx context.Context, token string) error {
	claims, err := srv.tokenService.Validate(token, entity.PurposeEmailVerification)
	if err != nil {
		return errors.Wrap(err, "verification token rejected")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, claims.AccountEmail())
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrInvalidToken.WrapMessage("account no longer exists")
		}

		return errors.Wrap(err, "failed to find account for verification")
	}

	// Re-clicking the mail link after verification succeeds as a no-op.
	if account.Verified {
		srv.log(ctx).Debug("Account already verified", slog.Any("accountID", account.ID))

		return nil
	}

	account.Verified = true
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to persist verified flag")
	}

	srv.log(ctx).Info("Account verified", slog.Any("accountID", account.ID))

	return nil
}

// RequestPasswordReset issues a reset token and emails it.
func (srv *credentialService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Respond identically for unknown addresses.
			srv.log(ctx).Warn("Password reset requested for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to find account for reset request")
	}

	token, err := srv.tokenService.IssuePasswordReset(account.Email)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	subject := "Password reset requested"
	body := fmt.Sprintf(
		"<p>A password reset was requested for your account. Use the token below within 30 minutes.</p><p><code>%s</code></p><p>If you did not request this, no action is needed.</p>",
		token,
	)

	if err := srv.mailSender.Send(ctx, account.Email, subject, body); err != nil {
		srv.log(ctx).Warn("Reset email delivery failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "reset email delivery failed")
	}

	srv.log(ctx).Info("Reset email sent", slog.String("email", email))

	return nil
}

// CompletePasswordReset validates the reset token, replaces the password hash
// and burns the token, all in one transaction.
func (srv *credentialService) CompletePasswordReset(ctx context.Context, input *usecase.CompletePasswordResetInput) error {
	claims, err := srv.tokenService.Validate(input.Token, entity.PurposePasswordReset)
	if err != nil {
		return errors.Wrap(err, "reset token rejected")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		tokenRepo := repoFactory.ConsumedTokenRepo()

		// Burn the token first: if two completions race, exactly one insert
		// wins and the loser's whole transaction rolls back.
		consumed := &entity.ConsumedToken{
			TokenID:    claims.TokenID(),
			ExpiresAt:  claims.Expiry(),
			ConsumedAt: time.Now(),
		}
		if err := tokenRepo.Consume(ctx, consumed); err != nil {
			if errors.Is(err, repository.ErrTokenConsumed) {
				return domainerrors.ErrTokenAlreadyUsed.WrapMessage("reset token replayed")
			}

			return errors.Wrap(err, "failed to consume reset token")
		}

		account, err := accountRepo.FindByEmail(ctx, claims.AccountEmail())
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidToken.WrapMessage("account no longer exists")
			}

			return errors.Wrap(err, "failed to find account for reset")
		}

		account.PasswordHash = hashedPassword
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist new password hash")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", claims.AccountEmail()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.String("email", claims.AccountEmail()))

	return nil
}

func (srv *credentialService) verifyLink(token string) string {
	if srv.verifyBaseURL == "" {
		return token
	}

	return srv.verifyBaseURL + "?token=" + token
}
