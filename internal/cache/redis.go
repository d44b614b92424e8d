package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

func NewRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// RateLimiter is a fixed-window counter keyed per client. Used to keep
// the contact form from being hammered; content reads are never limited.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  int64(limit),
		window: window,
	}
}

func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	full := fmt.Sprintf("ratelimit:%s", key)

	n, err := l.rdb.Incr(ctx, full).Result()
	if err != nil {
		return false, err
	}

	if n == 1 {
		if err := l.rdb.Expire(ctx, full, l.window).Err(); err != nil {
			return false, err
		}
	}

	return n <= l.limit, nil
}
