package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/userhub/internal/config"
	"github.com/ferdiebergado/userhub/internal/platform/cache"
	"github.com/ferdiebergado/userhub/internal/platform/db"
	"github.com/ferdiebergado/userhub/internal/platform/router"
	"github.com/ferdiebergado/userhub/internal/platform/validation"
	"github.com/ferdiebergado/userhub/internal/user"
)

// Store is the user repository selected at startup together with its
// liveness check and cleanup.
type Store struct {
	Repo  user.Repository
	Ping  func(ctx context.Context) error
	Close func() error
}

type Provider struct {
	Store     *Store
	Validator validation.Validator
	Router    router.Router
}

// OpenStore connects the backend named by cfg.Store.Driver.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	driver := cfg.Store.Driver
	slog.Info("Opening user store...", "driver", driver)

	switch driver {
	case config.DriverPostgres, config.DriverSQLite:
		conn, err := db.Open(ctx, driver, cfg.DB)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(ctx, conn, driver); err != nil {
			conn.Close()
			return nil, err
		}

		return sqlStore(conn, driver), nil
	case config.DriverRedis:
		client, err := cache.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}

		return &Store{
			Repo: user.NewRedisRepository(client, cfg.Redis.KeyPrefix),
			Ping: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			},
			Close: client.Close,
		}, nil
	case config.DriverMemory:
		return &Store{
			Repo:  user.NewMemoryRepository(),
			Ping:  func(context.Context) error { return nil },
			Close: func() error { return nil },
		}, nil
	default:
		return nil, fmt.Errorf("%w: store driver %q", config.ErrInvalid, driver)
	}
}

func sqlStore(conn *sql.DB, driver string) *Store {
	return &Store{
		Repo:  user.NewSQLRepository(conn, driver),
		Ping:  conn.PingContext,
		Close: conn.Close,
	}
}

func newProvider(store *Store) *Provider {
	return &Provider{
		Store:     store,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
	}
}
