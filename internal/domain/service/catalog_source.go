package service

import (
	"context"

	"gamehub/internal/domain/entity"
)

// CatalogSource is the boundary to the external game database used to seed
// and enrich the local catalog.
type CatalogSource interface {
	// TopRated fetches up to pageSize games ordered by rating, already mapped
	// to catalog entities with uppercased genres and platforms.
	TopRated(ctx context.Context) ([]*entity.Game, error)

	// Genres returns the distinct genre names seen in the source, uppercased.
	Genres(ctx context.Context) ([]string, error)

	// Platforms returns the distinct platform names seen in the source, uppercased.
	Platforms(ctx context.Context) ([]string, error)
}
