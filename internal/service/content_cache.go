package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache keys for public content reads
const (
	cacheKeyHomepage = "content:homepage:categories"
	cacheKeyFeatured = "content:featured:projects"
)

// contentCacheTTL bounds staleness of the public site between admin edits
const contentCacheTTL = 5 * time.Minute

// ContentCache caches rendered public content responses. A miss (or an
// unavailable backend) simply falls through to the database.
type ContentCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Invalidate(ctx context.Context, keys ...string)
}

// redisContentCache is the Redis implementation of ContentCache
type redisContentCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewContentCache creates a Redis-backed content cache. A nil client yields a
// cache that always misses.
func NewContentCache(client *redis.Client, logger *zap.Logger) ContentCache {
	return &redisContentCache{client: client, logger: logger}
}

func (c *redisContentCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("Cache entry corrupt, dropping", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return false
	}
	return true
}

func (c *redisContentCache) Set(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, contentCacheTTL).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *redisContentCache) Invalidate(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
