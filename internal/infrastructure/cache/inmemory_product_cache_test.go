package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop/storefront/internal/domain/catalog"
)

func testProduct(id, name string) *catalog.Product {
	return &catalog.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString("19.99"),
		Stock: 5,
	}
}

func TestInMemoryProductCache_GetMiss(t *testing.T) {
	c := NewInMemoryProductCache(time.Minute)

	product, err := c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestInMemoryProductCache_SetAndGet(t *testing.T) {
	c := NewInMemoryProductCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testProduct("p1", "Keyboard")))

	product, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Keyboard", product.Name)
}

func TestInMemoryProductCache_GetReturnsCopy(t *testing.T) {
	c := NewInMemoryProductCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testProduct("p1", "Keyboard")))

	first, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", second.Name)
}

func TestInMemoryProductCache_Expiry(t *testing.T) {
	c := NewInMemoryProductCache(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testProduct("p1", "Keyboard")))
	time.Sleep(20 * time.Millisecond)

	product, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestInMemoryProductCache_Remove(t *testing.T) {
	c := NewInMemoryProductCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testProduct("p1", "Keyboard")))
	require.NoError(t, c.Remove(ctx, "p1"))

	product, err := c.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestInMemoryProductCache_SetNilIsNoop(t *testing.T) {
	c := NewInMemoryProductCache(time.Minute)
	assert.NoError(t, c.Set(context.Background(), nil))
}
