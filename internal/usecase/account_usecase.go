package usecase

import (
	"context"

	"fleetcheck/internal/domain/entity"
)

// RegisterAccountInput defines the data required to register a new account.
type RegisterAccountInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// RegisterAccountOutput returns the newly created account's basic information.
type RegisterAccountOutput struct {
	Account *entity.Account
}

// AccountUsecase defines the interface for account administration operations.
// Registration is admin-only; there is no self-service signup.
type AccountUsecase interface {
	// Register creates a new unverified account and sends a verification
	// email. A failure to deliver the email does not undo the creation.
	Register(ctx context.Context, input *RegisterAccountInput) (*RegisterAccountOutput, error)

	// List retrieves all accounts, ordered by creation time.
	List(ctx context.Context) ([]*entity.Account, error)
}
