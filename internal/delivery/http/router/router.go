// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gamehub/internal/delivery/http/middleware"
	"gamehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	GameHandler    *handler.GameHandler
	UtilsHandler   *handler.UtilsHandler
	AuthMiddleware *middleware.AuthMiddleware
	ErrorHandler   *middleware.ErrorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	gameHandler    *handler.GameHandler
	utilsHandler   *handler.UtilsHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		gameHandler:    params.GameHandler,
		utilsHandler:   params.UtilsHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The authentication gate runs on every request; which paths it lets
// through without a token is decided by its own rule table.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate)

	e.GET("/", r.utilsHandler.HealthCheck)
	e.GET("/health", r.utilsHandler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/verify", r.authHandler.Verify)
	}

	gamesGroup := api.Group("/games")
	{
		gamesGroup.GET("", r.gameHandler.List)
		gamesGroup.GET("/:id", r.gameHandler.Get)
		gamesGroup.POST("", r.gameHandler.Create)
		gamesGroup.PATCH("/:id", r.gameHandler.Update)
		gamesGroup.DELETE("/:id", r.gameHandler.Delete)
	}

	utilsGroup := api.Group("/utils")
	{
		utilsGroup.GET("/test-db", r.utilsHandler.TestDB)
		utilsGroup.POST("/fill-database", r.utilsHandler.FillDatabase)
		utilsGroup.GET("/all-genres", r.utilsHandler.AllGenres)
		utilsGroup.GET("/all-platforms", r.utilsHandler.AllPlatforms)
	}
}
