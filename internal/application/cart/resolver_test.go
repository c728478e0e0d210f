package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domaincart "github.com/shop/storefront/internal/domain/cart"
	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/infrastructure/cache"
)

func TestResolver_ResolvesEntries(t *testing.T) {
	lookup := &fakeLookup{products: map[string]*catalog.Product{
		"p1": testProduct("p1", "Keyboard", "79.99"),
		"p2": testProduct("p2", "Mouse", "19.99"),
	}}
	resolver := NewResolver(lookup, nil, zap.NewNop())

	lines, dropped := resolver.Resolve(context.Background(), []domaincart.Entry{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	})

	require.Len(t, lines, 2)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, "Keyboard", lines[0].Product.Name)
}

func TestResolver_DropsUnresolvable(t *testing.T) {
	lookup := &fakeLookup{products: map[string]*catalog.Product{
		"p1": testProduct("p1", "Keyboard", "79.99"),
	}}
	resolver := NewResolver(lookup, nil, zap.NewNop())

	lines, dropped := resolver.Resolve(context.Background(), []domaincart.Entry{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "deleted", Quantity: 1},
	})

	require.Len(t, lines, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "p1", lines[0].ProductID)
}

func TestResolver_DropsInvalidEntries(t *testing.T) {
	lookup := &fakeLookup{products: map[string]*catalog.Product{
		"p1": testProduct("p1", "Keyboard", "79.99"),
	}}
	resolver := NewResolver(lookup, nil, zap.NewNop())

	lines, dropped := resolver.Resolve(context.Background(), []domaincart.Entry{
		{ProductID: "", Quantity: 2},
		{ProductID: "p1", Quantity: 0},
	})

	assert.Empty(t, lines)
	assert.Equal(t, 2, dropped)
	// Invalid entries never reach the backend.
	assert.Equal(t, 0, lookup.calls)
}

func TestResolver_ConsultsCacheFirst(t *testing.T) {
	lookup := &fakeLookup{products: map[string]*catalog.Product{
		"p1": testProduct("p1", "Keyboard", "79.99"),
	}}
	productCache := cache.NewInMemoryProductCache(time.Minute)
	resolver := NewResolver(lookup, productCache, zap.NewNop())
	ctx := context.Background()

	entries := []domaincart.Entry{{ProductID: "p1", Quantity: 1}}

	_, dropped := resolver.Resolve(ctx, entries)
	require.Equal(t, 0, dropped)
	assert.Equal(t, 1, lookup.calls)

	// Second resolution is served from the cache.
	lines, dropped := resolver.Resolve(ctx, entries)
	require.Len(t, lines, 1)
	assert.Equal(t, 0, dropped)
	assert.Equal(t, 1, lookup.calls)
}
