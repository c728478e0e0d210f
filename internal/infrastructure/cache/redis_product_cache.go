package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/infrastructure/config"
)

const redisKeyPrefix = "storefront:product:"

// RedisProductCache stores product snapshots in Redis so multiple
// gateway instances can share them.
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProductCache connects to Redis and verifies the connection
func NewRedisProductCache(cfg config.RedisConfig, ttl time.Duration) (*RedisProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProductCache{client: client, ttl: ttl}, nil
}

// NewRedisProductCacheWithClient wraps an existing client, useful for tests
func NewRedisProductCacheWithClient(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

// Get implements ProductCache. Decode failures count as misses.
func (c *RedisProductCache) Get(ctx context.Context, productID string) (*catalog.Product, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+productID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached product: %w", err)
	}

	var product catalog.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, nil
	}
	return &product, nil
}

// Set implements ProductCache
func (c *RedisProductCache) Set(ctx context.Context, product *catalog.Product) error {
	if product == nil || product.ID == "" {
		return nil
	}
	raw, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+product.ID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache product: %w", err)
	}
	return nil
}

// Remove implements ProductCache
func (c *RedisProductCache) Remove(ctx context.Context, productID string) error {
	if err := c.client.Del(ctx, redisKeyPrefix+productID).Err(); err != nil {
		return fmt.Errorf("failed to evict cached product: %w", err)
	}
	return nil
}

// Close implements ProductCache
func (c *RedisProductCache) Close() error {
	return c.client.Close()
}

var _ ProductCache = (*RedisProductCache)(nil)
