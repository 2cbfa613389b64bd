package postgres

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// gameRepository implements the repository.GameRepository interface using GORM.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

// List returns one page of games matching the filter plus the catalog total.
func (repo *gameRepository) List(ctx context.Context, filter repository.GameFilter) ([]*entity.Game, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.GameModel{})

	// jsonb containment: genres @> '["ACTION"]'
	if filter.Genre != "" {
		query = query.Where(datatypes.JSONArrayQuery("genres").Contains(filter.Genre))
	}
	if filter.Platform != "" {
		query = query.Where(datatypes.JSONArrayQuery("platforms").Contains(filter.Platform))
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.GameModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count games")
	}

	var gamesM []*model.GameModel
	err := query.
		Order("rating DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&gamesM).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list games")
	}

	games := make([]*entity.Game, 0, len(gamesM))
	for _, gameM := range gamesM {
		games = append(games, toGameDomain(gameM))
	}

	return games, total, nil
}

// FindByID retrieves a single game by its catalog ID.
func (repo *gameRepository) FindByID(ctx context.Context, id string) (*entity.Game, error) {
	var gameM model.GameModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&gameM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find game by id")
	}

	return toGameDomain(&gameM), nil
}

// Create persists a new game record.
func (repo *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	gameM := fromGameDomain(game)

	if err := repo.db.WithContext(ctx).Create(gameM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrGameExists.WrapMessage("game id already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create game")
	}

	game.CreatedAt = gameM.CreatedAt
	game.UpdatedAt = gameM.UpdatedAt

	return nil
}

// Update applies a partial change set to an existing game. String slices are
// wrapped so they serialize into the jsonb columns.
func (repo *gameRepository) Update(ctx context.Context, id string, changes map[string]any) error {
	for key, value := range changes {
		if slice, ok := value.([]string); ok {
			changes[key] = datatypes.NewJSONSlice(slice)
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.GameModel{}).
		Where("id = ?", id).
		Updates(changes)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// Delete removes a game from the catalog.
func (repo *gameRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GameModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGameNotFound
	}

	return nil
}

// ReplaceAll swaps the whole catalog for the given games in one transaction.
func (repo *gameRepository) ReplaceAll(ctx context.Context, games []*entity.Game) error {
	gamesM := make([]*model.GameModel, 0, len(games))
	for _, game := range games {
		gamesM = append(gamesM, fromGameDomain(game))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.GameModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear games")
		}
		if len(gamesM) == 0 {
			return nil
		}

		return errors.Wrap(tx.Create(gamesM).Error, "failed to insert games")
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace catalog")
	}

	return nil
}

// --- Mapper Functions ---

func toGameDomain(data *model.GameModel) *entity.Game {
	if data == nil {
		return nil
	}

	return &entity.Game{
		ID:              data.ID,
		Name:            data.Name,
		Released:        data.Released,
		BackgroundImage: data.BackgroundImage,
		Rating:          data.Rating,
		RatingsCount:    data.RatingsCount,
		Platforms:       data.Platforms,
		Genres:          data.Genres,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromGameDomain(data *entity.Game) *model.GameModel {
	if data == nil {
		return nil
	}

	return &model.GameModel{
		ID:              data.ID,
		Name:            data.Name,
		Released:        data.Released,
		BackgroundImage: data.BackgroundImage,
		Rating:          data.Rating,
		RatingsCount:    data.RatingsCount,
		Platforms:       datatypes.NewJSONSlice(data.Platforms),
		Genres:          datatypes.NewJSONSlice(data.Genres),
	}
}
