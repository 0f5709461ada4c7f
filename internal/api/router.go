package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sharedwatchlist/watchlist-api/internal/api/handler"
	"github.com/sharedwatchlist/watchlist-api/internal/api/middleware"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

// Dependencies are the collaborators the router mounts handlers on.
type Dependencies struct {
	WatchlistService ports.WatchlistService
	AuthService      ports.AuthService
	Verifier         ports.IdentityVerifier
	HealthChecks     map[string]handler.DependencyCheck
	Log              zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("watchlist_http"))

	// --- Health probes and tooling (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/authenticate", authHandler.Authenticate)

	// --- Watchlist routes ---
	watchlistHandler := handler.NewWatchlistHandler(deps.WatchlistService)
	wl := v1.Group("/watchlist", middleware.Auth(deps.Verifier))
	wl.GET("", watchlistHandler.GetWatchlist)
	wl.POST("", watchlistHandler.AddItem)
	wl.GET("/watched", watchlistHandler.GetWatchedHistory)
	wl.GET("/random", watchlistHandler.GetRandomItem)
	wl.PUT("/:id", watchlistHandler.UpdateItem)
	wl.DELETE("/:id", watchlistHandler.DeleteItem)
	wl.POST("/:id/vote", watchlistHandler.ToggleVote)
	wl.POST("/:id/watched", watchlistHandler.MarkAsWatched)

	return e
}
