// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"fleetcheck/internal/domain/entity"
)

// ErrTokenConsumed is returned by Consume when the token ID has already been
// recorded, meaning a single-use token is being redeemed a second time.
var ErrTokenConsumed = errors.New("token already consumed")

// ConsumedTokenRepository tracks redeemed single-use tokens by their unique
// token ID claim. It is the backing store for the single-use guarantee on
// password-reset tokens.
type ConsumedTokenRepository interface {
	// Consume records the token as used. It must be atomic: when two
	// callers race on the same token ID, exactly one succeeds and the
	// other receives ErrTokenConsumed.
	Consume(ctx context.Context, token *entity.ConsumedToken) error

	// DeleteExpired removes consumed-token rows whose underlying token has
	// expired anyway. Intended for periodic cleanup.
	DeleteExpired(ctx context.Context) error
}
