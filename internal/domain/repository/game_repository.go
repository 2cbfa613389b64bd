package repository

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/errors"
)

// ErrGameNotFound is returned when no game matches the given ID.
var ErrGameNotFound = errors.New("game not found")

// GameFilter narrows and paginates catalog listings.
type GameFilter struct {
	Page     int    // 1-based page number.
	Limit    int    // Page size.
	Genre    string // Optional uppercased genre, empty means no filter.
	Platform string // Optional uppercased platform, empty means no filter.
}

// Offset returns the number of records to skip for the requested page.
func (f GameFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}

	return (f.Page - 1) * f.Limit
}

// GameRepository is the persistence boundary for the game catalog.
type GameRepository interface {
	// List returns one page of games matching the filter plus the total
	// number of games in the catalog.
	List(ctx context.Context, filter GameFilter) ([]*entity.Game, int64, error)

	// FindByID retrieves a single game. Returns ErrGameNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Game, error)

	// Create persists a new game record.
	Create(ctx context.Context, game *entity.Game) error

	// Update applies the given field changes to an existing game.
	// Returns ErrGameNotFound when no record matches the ID.
	Update(ctx context.Context, id string, changes map[string]any) error

	// Delete removes a game. Returns ErrGameNotFound when no record matches.
	Delete(ctx context.Context, id string) error

	// ReplaceAll swaps the whole catalog for the given games in one
	// transaction, used by the ingestion job.
	ReplaceAll(ctx context.Context, games []*entity.Game) error
}
