package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ferdiebergado/userhub/internal/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// New creates a Redis client and verifies the server is reachable.
func New(ctx context.Context, cfg *config.Redis) (*redis.Client, error) {
	slog.Info("Connecting to redis...", "addr", cfg.Addr)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("platform/cache: ping: %w", err)
	}

	slog.Info("Connected to redis.", "addr", cfg.Addr)
	return client, nil
}
