package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/saxenaaman628/redis-quiz-service/config"
)

// NewClient opens a pooled client and verifies the connection with PING.
// The caller owns the client and must Close it on shutdown.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	return rdb, nil
}
