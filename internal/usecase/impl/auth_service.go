// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "fleetcheck/internal/delivery/context"
	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/domain/service"
	"fleetcheck/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the credentials and issues a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Unknown email and wrong password must be indistinguishable.
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// bcrypt check runs outside any transaction (CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// The verified flag is only consulted after the password checks out, so
	// the distinct unverified error cannot be used to probe foreign accounts.
	if !account.Verified {
		srv.log(ctx).Warn("Login rejected for unverified account", slog.String("email", input.Email))

		return nil, domainerrors.ErrAccountUnverified.WrapMessage("login rejected")
	}

	accessToken, err := srv.tokenService.IssueSession(account)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Account:     account,
	}, nil
}

// CurrentIdentity resolves a session token back to the account it was issued for.
func (srv *authService) CurrentIdentity(ctx context.Context, token string) (*entity.Account, error) {
	claims, err := srv.tokenService.Validate(token, entity.PurposeSession)
	if err != nil {
		return nil, errors.Wrap(err, "session token rejected")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, claims.AccountEmail())
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// The token outlived its account.
			srv.log(ctx).Warn("Session token for missing account", slog.String("email", claims.AccountEmail()))

			return nil, domainerrors.ErrInvalidToken.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account for session token")
	}

	return account, nil
}
