// Package ratelimit implements fixed-window operation counters on Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"passport/config"
	"passport/internal/domain/service"
)

// redisCounter implements service.RateCounter with one Redis key per
// (scope, operation, window) triple. INCR and EXPIRE run in a pipeline so a
// key can never be left without a TTL.
type redisCounter struct {
	client *redis.Client
}

// NewRedisClient builds the Redis client from configuration. Redis is
// optional; without it the counters report errors and the middleware lets
// requests through uncounted.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}), nil
}

// NewRedisCounter is the constructor for redisCounter.
func NewRedisCounter(client *redis.Client) service.RateCounter {
	return &redisCounter{client: client}
}

// Hit increments the counter for one (scope, operation) pair within the
// current fixed window and returns the remaining allowance.
func (c *redisCounter) Hit(ctx context.Context, scope, operation string, limit int, window time.Duration) (int, error) {
	if c.client == nil {
		return 0, errors.New("rate counter has no redis backend")
	}

	key := windowKey(scope, operation, window)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.Wrap(err, "increment rate counter")
	}

	remaining := limit - int(incr.Val())
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}

func windowKey(scope, operation string, window time.Duration) string {
	// Fixed windows aligned to the epoch.
	bucket := time.Now().Unix() / int64(window.Seconds())

	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, operation, bucket)
}
