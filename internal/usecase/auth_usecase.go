// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fleetcheck/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	Account     *entity.Account
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login checks the credentials and issues a session token. Unknown
	// email and wrong password surface the same invalid-credentials error
	// so the response never reveals whether the email is registered.
	// An account that has not completed email verification is rejected
	// with a distinct unverified error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentIdentity resolves a session token back to the account it was
	// issued for. Tokens whose account no longer exists are rejected.
	CurrentIdentity(ctx context.Context, token string) (*entity.Account, error)
}
