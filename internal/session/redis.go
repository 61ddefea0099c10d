package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

const keyPrefix = "talenthub:session:"

// ErrNoBrowserID is returned by server-side areas when the request carries
// no browser id.
var ErrNoBrowserID = errors.New("no browser id in request")

// RedisBackend stores sessions server-side, keyed by browser id.
type RedisBackend struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

func (b RedisBackend) Name() string { return "redis" }

// Open binds the area to the browser id set by the browser-id middleware.
func (b RedisBackend) Open(_ http.ResponseWriter, r *http.Request) Area {
	return NewRedisArea(b.Client, logger.BrowserIDFromContext(r.Context()), b.TTL)
}

// RedisArea is the Area of a single browser.
type RedisArea struct {
	client    redis.UniversalClient
	browserID string
	ttl       time.Duration
}

// NewRedisArea creates a Redis-backed area for browserID.
func NewRedisArea(client redis.UniversalClient, browserID string, ttl time.Duration) *RedisArea {
	return &RedisArea{client: client, browserID: browserID, ttl: ttl}
}

func (a *RedisArea) key(k string) string {
	return keyPrefix + a.browserID + ":" + k
}

func (a *RedisArea) Get(ctx context.Context, key string) (string, bool, error) {
	if a.browserID == "" {
		return "", false, ErrNoBrowserID
	}
	v, err := a.client.Get(ctx, a.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get session: %w", err)
	}
	return v, true, nil
}

func (a *RedisArea) Set(ctx context.Context, key, value string) error {
	if a.browserID == "" {
		return ErrNoBrowserID
	}
	if err := a.client.Set(ctx, a.key(key), value, a.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (a *RedisArea) Delete(ctx context.Context, keys ...string) error {
	if a.browserID == "" {
		return ErrNoBrowserID
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = a.key(k)
	}
	if err := a.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
