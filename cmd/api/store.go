package main

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sharedwatchlist/watchlist-api/internal/api/handler"
	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
	"github.com/sharedwatchlist/watchlist-api/internal/infrastructure/db/memory"
	"github.com/sharedwatchlist/watchlist-api/internal/infrastructure/db/mongo"
	"github.com/sharedwatchlist/watchlist-api/internal/infrastructure/db/mysql"
	"github.com/sharedwatchlist/watchlist-api/internal/infrastructure/db/redis"
	"github.com/sharedwatchlist/watchlist-api/internal/pkg/config"
)

// store bundles the repositories of the selected backend with its readiness
// checks and teardown.
type store struct {
	items    ports.ItemRepository
	users    ports.UserRepository
	activity ports.ActivityLog
	checks   map[string]handler.DependencyCheck
	close    func()
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("db", cfg.Mongo.Database).Msg("connected to mongodb")

		return &store{
			items:    mongo.NewItemRepository(db),
			users:    mongo.NewUserRepository(db),
			activity: mongo.NewActivityLog(db),
			checks: map[string]handler.DependencyCheck{
				"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
			},
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Disconnect(ctx)
			},
		}, nil

	case config.StoreMySQL:
		db, err := mysql.Open(cfg.MySQL.DSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("mysql handle: %w", err)
		}
		log.Info().Msg("connected to mysql")

		return &store{
			items:    mysql.NewItemRepository(db),
			users:    mysql.NewUserRepository(db),
			activity: ports.NopActivityLog{},
			checks: map[string]handler.DependencyCheck{
				"mysql": sqlDB.PingContext,
			},
			close: func() { _ = sqlDB.Close() },
		}, nil

	case config.StoreMemory:
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return &store{
			items:    memory.NewItemRepository(),
			users:    memory.NewUserRepository(),
			activity: ports.NopActivityLog{},
			checks:   map[string]handler.DependencyCheck{},
			close:    func() {},
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

func openIdempotency(ctx context.Context, cfg *config.Config) (*goredis.Client, *redis.IdempotencyStore, error) {
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	return rdb, redis.NewIdempotencyStore(rdb, cfg.Idempotency.TTL), nil
}
