package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	_ "github.com/sharedwatchlist/watchlist-api/docs" // swagger docs
	"github.com/sharedwatchlist/watchlist-api/internal/api"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
	"github.com/sharedwatchlist/watchlist-api/internal/core/service"
	"github.com/sharedwatchlist/watchlist-api/internal/infrastructure/identity"
	"github.com/sharedwatchlist/watchlist-api/internal/pkg/config"
	"github.com/sharedwatchlist/watchlist-api/pkg/logger"
)

// @title Shared Watchlist API
// @version 1.0
// @description Shared movie and series watchlist with voting, watched history and random picks.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "watchlist-api",
	})

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	opts := []service.Option{service.WithActivityLog(st.activity)}

	rdb, idem, err := openIdempotency(ctx, cfg)
	if err != nil {
		// Replay protection is optional; the API still works without it.
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, Idempotency-Key disabled")
	} else {
		defer rdb.Close()
		opts = append(opts, service.WithIdempotencyStore(idem))
		st.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	verifier, err := buildVerifier(ctx, cfg)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Dependencies{
		WatchlistService: service.NewWatchlistService(st.items, st.users, logger.With("watchlist"), opts...),
		AuthService:      service.NewAuthService(st.users, cfg.JWTSecret, cfg.JWTTTL),
		Verifier:         verifier,
		HealthChecks:     st.checks,
		Log:              logger.With("http"),
	})

	log.Info().
		Str("store", cfg.StoreDriver).
		Bool("oidc", cfg.OIDC.IssuerURL != "").
		Msg("dependencies ready")

	return serve(router, fmt.Sprintf(":%s", cfg.Port), cfg.Env, log)
}

// buildVerifier accepts locally issued tokens and, when configured, tokens
// from an OIDC issuer.
func buildVerifier(ctx context.Context, cfg *config.Config) (ports.IdentityVerifier, error) {
	local := identity.NewJWTVerifier(cfg.JWTSecret)
	if cfg.OIDC.IssuerURL == "" {
		return local, nil
	}

	oidcVerifier, err := identity.NewOIDCVerifier(ctx, cfg.OIDC.IssuerURL, cfg.OIDC.ClientID)
	if err != nil {
		return nil, fmt.Errorf("oidc: %w", err)
	}
	return identity.Chain{local, oidcVerifier}, nil
}
