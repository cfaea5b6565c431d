package postgres

import (
	"context"
	"time"

	"fleetcheck/internal/domain/entity"
	domainerrors "fleetcheck/internal/domain/errors"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// consumedTokenRepository implements the domain's ConsumedTokenRepository interface using GORM.
type consumedTokenRepository struct {
	db *gorm.DB
}

// NewConsumedTokenRepository is the constructor for consumedTokenRepository.
func NewConsumedTokenRepository(db *gorm.DB) repository.ConsumedTokenRepository {
	return &consumedTokenRepository{db: db}
}

// Consume records a single-use token as redeemed. The token ID is the primary
// key, so when two callers race on the same token the insert loser hits the
// unique constraint and gets ErrTokenConsumed.
func (repo *consumedTokenRepository) Consume(ctx context.Context, token *entity.ConsumedToken) error {
	tokenM := &model.ConsumedTokenModel{
		TokenID:    token.TokenID,
		ExpiresAt:  token.ExpiresAt,
		ConsumedAt: token.ConsumedAt,
	}
	if tokenM.ConsumedAt.IsZero() {
		tokenM.ConsumedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTokenConsumed
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record consumed token")
	}

	token.ConsumedAt = tokenM.ConsumedAt

	return nil
}

// DeleteExpired removes rows whose underlying token has expired anyway.
// A replayed expired token already fails signature-side validation, so
// keeping the row buys nothing.
func (repo *consumedTokenRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.ConsumedTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete expired consumed tokens")
	}

	return nil
}
