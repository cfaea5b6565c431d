// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a login-capable user of the inspection system.
// The email doubles as the account identifier: it is what token subjects
// reference and what inspections record in their inspected-by field.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account record itself.
	Email        string    // The login identifier; unique across all accounts.
	PasswordHash string    // The bcrypt hash of the password. The plaintext is never stored.
	Role         Role      // The access-control role (admin / supervisor / user).
	Verified     bool      // Whether the email-verification handshake has completed.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
