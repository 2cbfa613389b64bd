package usecase

import (
	"context"

	"gamehub/internal/domain/entity"
)

const (
	// DefaultPage and DefaultLimit apply when the listing query omits
	// pagination parameters.
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListGamesInput narrows and paginates a catalog listing.
type ListGamesInput struct {
	Page     int
	Limit    int
	Genre    string
	Platform string
}

// ListGamesOutput is one page of the catalog plus pagination totals.
type ListGamesOutput struct {
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	TotalGames int64          `json:"totalGames"`
	Games      []*entity.Game `json:"games"`
}

// CreateGameInput is a fully validated new catalog entry.
type CreateGameInput struct {
	Name            string   `json:"name" validate:"required"`
	Released        *string  `json:"released" validate:"omitempty,releasedate"`
	BackgroundImage string   `json:"background_image" validate:"required,url"`
	Rating          float64  `json:"rating"`
	RatingsCount    int      `json:"ratings_count"`
	Platforms       []string `json:"platforms" validate:"dive,gameplatform"`
	Genres          []string `json:"genres" validate:"dive,gamegenre"`
}

// UpdateGameInput is a partial change set; nil fields are left untouched.
type UpdateGameInput struct {
	Name            *string  `json:"name" validate:"omitempty,min=1"`
	Released        *string  `json:"released" validate:"omitempty,releasedate"`
	BackgroundImage *string  `json:"background_image" validate:"omitempty,url"`
	Rating          *float64 `json:"rating"`
	RatingsCount    *int     `json:"ratings_count"`
	Platforms       []string `json:"platforms" validate:"omitempty,dive,gameplatform"`
	Genres          []string `json:"genres" validate:"omitempty,dive,gamegenre"`
}

// GameUsecase exposes the catalog CRUD operations.
type GameUsecase interface {
	List(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)
	Get(ctx context.Context, id string) (*entity.Game, error)
	Create(ctx context.Context, input *CreateGameInput) (*entity.Game, error)
	Update(ctx context.Context, id string, input *UpdateGameInput) (*entity.Game, error)
	Delete(ctx context.Context, id string) error
}
