// Package repository defines the persistence interfaces consumed by the use
// cases, keeping the domain independent of the storage technology.
package repository

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/errors"
)

// ErrAccountNotFound is returned when no account matches the lookup key.
// Callers must not conflate it with infrastructure failures.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the credential store boundary. The core depends on it
// only through lookup-by-email and insert.
type AccountRepository interface {
	// FindByEmail retrieves an account by its email.
	// Returns ErrAccountNotFound when no account exists for the email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. A uniqueness violation on email maps to
	// a duplicate-account domain error, resolving concurrent registrations.
	Create(ctx context.Context, account *entity.Account) error
}
