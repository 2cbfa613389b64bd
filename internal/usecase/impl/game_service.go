package impl

import (
	"context"
	"log/slog"
	"math"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// gameService implements the GameUsecase interface.
type gameService struct {
	games  repository.GameRepository
	logger *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(games repository.GameRepository, logger *slog.Logger) usecase.GameUsecase {
	return &gameService{
		games:  games,
		logger: logger,
	}
}

// List returns one page of the catalog with pagination totals.
func (srv *gameService) List(ctx context.Context, input *usecase.ListGamesInput) (*usecase.ListGamesOutput, error) {
	page := input.Page
	if page < 1 {
		page = usecase.DefaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = usecase.DefaultLimit
	}

	filter := repository.GameFilter{
		Page:     page,
		Limit:    limit,
		Genre:    input.Genre,
		Platform: input.Platform,
	}

	games, total, err := srv.games.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	return &usecase.ListGamesOutput{
		Page:       page,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		TotalGames: total,
		Games:      games,
	}, nil
}

// Get retrieves a single game by its catalog ID.
func (srv *gameService) Get(ctx context.Context, id string) (*entity.Game, error) {
	game, err := srv.games.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound.WrapMessage("game lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find game")
	}

	return game, nil
}

// Create stores a new game under a generated ID.
func (srv *gameService) Create(ctx context.Context, input *usecase.CreateGameInput) (*entity.Game, error) {
	game := &entity.Game{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Released:        input.Released,
		BackgroundImage: input.BackgroundImage,
		Rating:          input.Rating,
		RatingsCount:    input.RatingsCount,
		Platforms:       input.Platforms,
		Genres:          input.Genres,
	}

	if err := srv.games.Create(ctx, game); err != nil {
		srv.logger.Error("Failed to create game", "error", err, "name", input.Name)

		return nil, errors.Wrap(err, "failed to create game")
	}

	srv.logger.Debug("Game created", "gameID", game.ID)

	return game, nil
}

// Update applies a partial change set and returns the updated record.
func (srv *gameService) Update(ctx context.Context, id string, input *usecase.UpdateGameInput) (*entity.Game, error) {
	changes := make(map[string]any)
	if input.Name != nil {
		changes["name"] = *input.Name
	}
	if input.Released != nil {
		changes["released"] = *input.Released
	}
	if input.BackgroundImage != nil {
		changes["background_image"] = *input.BackgroundImage
	}
	if input.Rating != nil {
		changes["rating"] = *input.Rating
	}
	if input.RatingsCount != nil {
		changes["ratings_count"] = *input.RatingsCount
	}
	if input.Platforms != nil {
		changes["platforms"] = input.Platforms
	}
	if input.Genres != nil {
		changes["genres"] = input.Genres
	}

	if len(changes) > 0 {
		if err := srv.games.Update(ctx, id, changes); err != nil {
			if errors.Is(err, repository.ErrGameNotFound) {
				return nil, domainerrors.ErrGameNotFound.WrapMessage("game update failed")
			}

			return nil, errors.Wrap(err, "failed to update game")
		}
	}

	game, err := srv.games.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound.WrapMessage("game update failed")
		}

		return nil, errors.Wrap(err, "failed to reload game")
	}

	return game, nil
}

// Delete removes a game from the catalog.
func (srv *gameService) Delete(ctx context.Context, id string) error {
	if err := srv.games.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return domainerrors.ErrGameNotFound.WrapMessage("game delete failed")
		}

		return errors.Wrap(err, "failed to delete game")
	}

	srv.logger.Debug("Game deleted", "gameID", id)

	return nil
}
