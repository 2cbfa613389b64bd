package usecase

import "context"

// CatalogUsecase drives the third-party catalog ingestion job.
type CatalogUsecase interface {
	// FillDatabase replaces the stored catalog with the source's top-rated
	// games and returns how many were ingested.
	FillDatabase(ctx context.Context) (int, error)

	// AllGenres lists the distinct genres known to the source.
	AllGenres(ctx context.Context) ([]string, error)

	// AllPlatforms lists the distinct platforms known to the source.
	AllPlatforms(ctx context.Context) ([]string, error)
}
