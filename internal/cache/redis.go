package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/config"
)

// KV is the minimal key-value surface the snapshot cache needs.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Close() error
}

type redisKV struct {
	client *redis.Client
}

// NewRedisKV connects to Redis using the provided configuration. The cache
// is best-effort: an unreachable Redis is logged and tolerated.
func NewRedisKV(cfg config.CacheConfig, logger *zap.Logger) KV {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis, snapshot cache degraded", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Close() error {
	return r.client.Close()
}
