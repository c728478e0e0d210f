package cart

import (
	"context"

	"go.uber.org/zap"

	domaincart "github.com/shop/storefront/internal/domain/cart"
	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/infrastructure/cache"
)

// ProductLookup fetches one product snapshot by id
type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// EntryStore persists the guest cart snapshot
type EntryStore interface {
	Load() []domaincart.Entry
	Save(entries []domaincart.Entry) error
}

// Resolver hydrates persisted cart entries into lines. A product that
// cannot be fetched (deleted, not found, backend down) is a soft
// failure: the entry is dropped, never an error for the whole load.
type Resolver struct {
	products ProductLookup
	cache    cache.ProductCache
	logger   *zap.Logger
}

// NewResolver creates a resolver. The cache may be nil.
func NewResolver(products ProductLookup, productCache cache.ProductCache, logger *zap.Logger) *Resolver {
	return &Resolver{products: products, cache: productCache, logger: logger}
}

// Resolve hydrates the entries, consulting the cache before the backend.
// It returns the resolved lines and the number of entries dropped.
func (r *Resolver) Resolve(ctx context.Context, entries []domaincart.Entry) ([]domaincart.Line, int) {
	lines := make([]domaincart.Line, 0, len(entries))
	dropped := 0

	for _, e := range entries {
		if e.ProductID == "" || e.Quantity < 1 {
			dropped++
			continue
		}
		product := r.lookup(ctx, e.ProductID)
		if product == nil {
			dropped++
			r.logger.Warn("dropping unresolvable cart entry",
				zap.String("product_id", e.ProductID),
			)
			continue
		}
		lines = append(lines, domaincart.Line{
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			Product:   product,
		})
	}

	return lines, dropped
}

func (r *Resolver) lookup(ctx context.Context, productID string) *catalog.Product {
	if r.cache != nil {
		if product, err := r.cache.Get(ctx, productID); err == nil && product != nil {
			return product
		}
	}

	product, err := r.products.GetProduct(ctx, productID)
	if err != nil {
		return nil
	}
	if r.cache != nil {
		if err := r.cache.Set(ctx, product); err != nil {
			r.logger.Debug("failed to cache product", zap.String("product_id", productID), zap.Error(err))
		}
	}
	return product
}
