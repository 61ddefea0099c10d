// Package database opens the connections to the service's backing stores.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/kiran7893/talenthub-frontend/pkg/errors"
)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// NewRedisClient creates a Redis client and verifies the connection with a
// PING bounded by ctx.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, apperrors.Config("redis address is empty")
	}
	dial := cfg.DialTimeout
	if dial == 0 {
		dial = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dial,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.Unavailable("session store is unreachable", fmt.Errorf("ping redis %s: %w", cfg.Addr, err))
	}
	return client, nil
}

// RedisChecker adapts a client into a readiness check.
func RedisChecker(client redis.UniversalClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
