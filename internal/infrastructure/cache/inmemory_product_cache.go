package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shop/storefront/internal/domain/catalog"
)

// InMemoryProductCache is a TTL map cache for product snapshots. It is
// the default backend for single-process deployments.
type InMemoryProductCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]inMemoryEntry
}

type inMemoryEntry struct {
	product   catalog.Product
	expiresAt time.Time
}

// NewInMemoryProductCache creates an in-memory cache with the given TTL
func NewInMemoryProductCache(ttl time.Duration) *InMemoryProductCache {
	return &InMemoryProductCache{
		ttl:     ttl,
		entries: make(map[string]inMemoryEntry),
	}
}

// Get implements ProductCache
func (c *InMemoryProductCache) Get(_ context.Context, productID string) (*catalog.Product, error) {
	c.mu.RLock()
	entry, ok := c.entries[productID]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock, Set may have refreshed it.
		if current, ok := c.entries[productID]; ok && time.Now().After(current.expiresAt) {
			delete(c.entries, productID)
		}
		c.mu.Unlock()
		return nil, nil
	}

	product := entry.product
	return &product, nil
}

// Set implements ProductCache
func (c *InMemoryProductCache) Set(_ context.Context, product *catalog.Product) error {
	if product == nil || product.ID == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[product.ID] = inMemoryEntry{
		product:   *product,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// Remove implements ProductCache
func (c *InMemoryProductCache) Remove(_ context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, productID)
	return nil
}

// Close implements ProductCache
func (c *InMemoryProductCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]inMemoryEntry)
	return nil
}

var _ ProductCache = (*InMemoryProductCache)(nil)
