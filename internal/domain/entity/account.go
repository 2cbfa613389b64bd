// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is an identity record keyed by email. At most one Account exists
// per email; the uniqueness is enforced by the persistence layer.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The login identifier, stored case-sensitively.
	PasswordHash string    // The bcrypt hash of the password. Never returned to callers.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
