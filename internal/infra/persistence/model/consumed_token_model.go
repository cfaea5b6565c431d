package model

import "time"

// ConsumedTokenModel mirrors the 'consumed_tokens' table. The primary key is
// the token's jti claim, so a second insert for the same token fails on the
// unique constraint and surfaces the replay.
type ConsumedTokenModel struct {
	TokenID    string    `gorm:"type:varchar(64);primaryKey"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	ConsumedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ConsumedTokenModel) TableName() string {
	return "consumed_tokens"
}
