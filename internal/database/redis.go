package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"content-admin-api/internal/config"
)

var RedisClient *redis.Client

// InitRedis connects the shared Redis client used for public content caching.
func InitRedis(cfg config.Config, log *zap.Logger) error {
	var client *redis.Client

	// Prefer a redis:// URL when one is configured
	if opts, err := redis.ParseURL(cfg.Redis.URL); err == nil {
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.URL,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	RedisClient = client
	log.Info("Redis connection established successfully",
		zap.String("addr", cfg.Redis.URL),
		zap.Int("db", cfg.Redis.DB))
	return nil
}

// GetRedis returns the shared client, or nil when Redis is unavailable.
// Callers treat a nil client as a cache miss.
func GetRedis() *redis.Client {
	return RedisClient
}
