package handler

import (
	"log/slog"
	"net/http"

	"gamehub/internal/delivery/http/response"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UtilsHandler exposes operational endpoints: store health, catalog seeding
// and the known genre/platform labels.
type UtilsHandler struct {
	catalog usecase.CatalogUsecase
	health  repository.StoreHealth
	logger  *slog.Logger
}

// NewUtilsHandler is the constructor for UtilsHandler, injected by Fx.
func NewUtilsHandler(catalog usecase.CatalogUsecase, health repository.StoreHealth, logger *slog.Logger) *UtilsHandler {
	return &UtilsHandler{
		catalog: catalog,
		health:  health,
		logger:  logger,
	}
}

// HealthCheck reports process liveness.
func (h *UtilsHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// TestDB checks store connectivity.
func (h *UtilsHandler) TestDB(c echo.Context) error {
	if err := h.health.Ping(c.Request().Context()); err != nil {
		h.logger.Error("database ping failed", "error", err.Error())

		return domainerrors.ErrStoreUnavailable.WrapMessage("database ping failed")
	}

	return response.Success(c, http.StatusOK, map[string]string{"database": "connected"}, "Database connection successful")
}

// FillDatabase replaces the stored catalog with fresh data from the source.
func (h *UtilsHandler) FillDatabase(c echo.Context) error {
	count, err := h.catalog.FillDatabase(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("catalog refreshed", "games", count)

	return response.Success(c, http.StatusOK, map[string]int{"inserted": count}, "Catalog filled successfully")
}

// AllGenres lists the distinct genres known to the catalog source.
func (h *UtilsHandler) AllGenres(c echo.Context) error {
	genres, err := h.catalog.AllGenres(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"genres": genres}, "")
}

// AllPlatforms lists the distinct platforms known to the catalog source.
func (h *UtilsHandler) AllPlatforms(c echo.Context) error {
	platforms, err := h.catalog.AllPlatforms(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"platforms": platforms}, "")
}
