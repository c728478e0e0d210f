// Package cache holds short-lived product snapshots so cart resolution
// does not hit the backend for every entry on every load.
package cache

import (
	"context"

	"github.com/shop/storefront/internal/domain/catalog"
)

// ProductCache stores product snapshots by id. Implementations treat
// every failure as a miss; the cache is never the source of truth.
type ProductCache interface {
	// Get returns the cached product, or nil on a miss
	Get(ctx context.Context, productID string) (*catalog.Product, error)

	// Set stores a product snapshot under its id
	Set(ctx context.Context, product *catalog.Product) error

	// Remove evicts a product snapshot
	Remove(ctx context.Context, productID string) error

	// Close releases any backing resources
	Close() error
}
