package impl

import (
	"context"
	"log/slog"

	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/domain/service"
	"gamehub/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	source service.CatalogSource
	games  repository.GameRepository
	logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	source service.CatalogSource,
	games repository.GameRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		source: source,
		games:  games,
		logger: logger,
	}
}

// FillDatabase replaces the stored catalog with the source's top-rated games.
func (srv *catalogService) FillDatabase(ctx context.Context) (int, error) {
	srv.logger.Info("Starting catalog ingestion")

	games, err := srv.source.TopRated(ctx)
	if err != nil {
		srv.logger.Error("Catalog source fetch failed", "error", err)

		return 0, domainerrors.ErrCatalogSourceFailed.WrapMessage("catalog ingestion failed")
	}

	if err := srv.games.ReplaceAll(ctx, games); err != nil {
		srv.logger.Error("Failed to replace catalog", "error", err)

		return 0, errors.Wrap(err, "failed to replace catalog")
	}

	srv.logger.Info("Catalog ingestion finished", "games", len(games))

	return len(games), nil
}

// AllGenres lists the distinct genres known to the source.
func (srv *catalogService) AllGenres(ctx context.Context) ([]string, error) {
	genres, err := srv.source.Genres(ctx)
	if err != nil {
		return nil, domainerrors.ErrCatalogSourceFailed.WrapMessage("failed to fetch genres")
	}

	return genres, nil
}

// AllPlatforms lists the distinct platforms known to the source.
func (srv *catalogService) AllPlatforms(ctx context.Context) ([]string, error) {
	platforms, err := srv.source.Platforms(ctx)
	if err != nil {
		return nil, domainerrors.ErrCatalogSourceFailed.WrapMessage("failed to fetch platforms")
	}

	return platforms, nil
}
