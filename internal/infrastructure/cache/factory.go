package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shop/storefront/internal/infrastructure/config"
)

// ProductCacheFactory creates product caches based on configuration
type ProductCacheFactory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// ProductCacheFactoryOption is a functional option for configuring the factory
type ProductCacheFactoryOption func(*ProductCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) ProductCacheFactoryOption {
	return func(f *ProductCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory
// cache when Redis is configured but unavailable. Default is true.
func WithInMemoryFallback(allow bool) ProductCacheFactoryOption {
	return func(f *ProductCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewProductCacheFactory creates a new factory
func NewProductCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...ProductCacheFactoryOption) *ProductCacheFactory {
	f := &ProductCacheFactory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateCache creates a product cache per the configured backend. With
// the redis backend it tries Redis first and falls back to in-memory
// when allowed.
func (f *ProductCacheFactory) CreateCache() (ProductCache, error) {
	if f.cacheConfig.Backend != "redis" {
		f.logger.Info("using in-memory product cache")
		return NewInMemoryProductCache(f.cacheConfig.TTL), nil
	}

	cache, err := NewRedisProductCache(f.redisConfig, f.cacheConfig.TTL)
	if err == nil {
		f.logger.Info("using Redis product cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for product cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory product cache",
		zap.Error(err),
	)
	return NewInMemoryProductCache(f.cacheConfig.TTL), nil
}
