package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	dom "github.com/mmyatt91/message.ly/internal/domain"
)

const keyDirectory = "users:directory"

// UserCache caches the public user directory in Redis. The directory only
// changes on registration, so it is cheap to keep warm.
type UserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewUserCache returns a new UserCache.
func NewUserCache(rdb *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{rdb: rdb, ttl: ttl}
}

// GetDirectory returns the cached directory or nil if miss.
func (c *UserCache) GetDirectory(ctx context.Context) ([]dom.UserSummary, error) {
	b, err := c.rdb.Get(ctx, keyDirectory).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.UserSummary
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetDirectory stores the directory in cache.
func (c *UserCache) SetDirectory(ctx context.Context, list []dom.UserSummary) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyDirectory, b, c.ttl).Err()
}

// Invalidate drops the cached directory (called after a registration).
func (c *UserCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyDirectory).Err()
}
