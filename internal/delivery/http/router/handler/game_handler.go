package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gamehub/internal/delivery/http/response"
	"gamehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameHandler holds dependencies for catalog handlers.
type GameHandler struct {
	uc     usecase.GameUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler, injected by Fx.
func NewGameHandler(uc usecase.GameUsecase, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of the catalog. Filters arrive lowercase or mixed
// case from clients and are matched against the uppercase stored labels.
func (h *GameHandler) List(c echo.Context) error {
	input := &usecase.ListGamesInput{
		Genre:    strings.ToUpper(c.QueryParam("genre")),
		Platform: strings.ToUpper(c.QueryParam("platform")),
	}

	if page := c.QueryParam("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return response.BadRequest(c, "INVALID_QUERY", "page must be a positive integer")
		}
		input.Page = n
	}

	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			return response.BadRequest(c, "INVALID_QUERY", "limit must be a positive integer")
		}
		input.Limit = n
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Get returns a single game by ID.
func (h *GameHandler) Get(c echo.Context) error {
	game, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, game, "")
}

// Create adds a game to the catalog with a server-assigned ID.
func (h *GameHandler) Create(c echo.Context) error {
	input := new(usecase.CreateGameInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	game, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, game, "Game created successfully")
}

// Update applies a partial patch to an existing game.
func (h *GameHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateGameInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	game, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, game, "Game updated successfully")
}

// Delete removes a game from the catalog.
func (h *GameHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Game deleted successfully")
}
