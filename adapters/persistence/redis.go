package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/devfolio/internal/application/service"
	"github.com/khoahotran/devfolio/internal/config"
	"github.com/khoahotran/devfolio/pkg/logger"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

type redisViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisViewCache caches rendered public portfolio views with a short TTL.
// The TTL is the staleness ceiling when worker-driven invalidation lags.
func NewRedisViewCache(rdb *redis.Client, ttl time.Duration) service.ViewCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisViewCache{rdb: rdb, ttl: ttl}
}

func viewKey(username string) string {
	return "portfolio:view:" + username
}

func (c *redisViewCache) GetView(ctx context.Context, username string) ([]byte, bool, error) {
	payload, err := c.rdb.Get(ctx, viewKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("view cache get: %w", err)
	}
	return payload, true, nil
}

func (c *redisViewCache) SetView(ctx context.Context, username string, payload []byte) error {
	if err := c.rdb.Set(ctx, viewKey(username), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("view cache set: %w", err)
	}
	return nil
}

func (c *redisViewCache) InvalidateView(ctx context.Context, username string) error {
	if err := c.rdb.Del(ctx, viewKey(username)).Err(); err != nil {
		return fmt.Errorf("view cache del: %w", err)
	}
	return nil
}
