package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates and validates a go-redis client. The pool is sized for the
// summary cache plus the worker queue consumers; the startup ping is bounded
// so a dead Redis fails fast instead of hanging boot.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.DialTimeout = 5 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
