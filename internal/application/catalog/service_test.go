package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/infrastructure/api"
	"github.com/shop/storefront/internal/infrastructure/cache"
)

type fakeAPI struct {
	products map[string]*catalog.Product
	gets     int
	deleted  []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{products: make(map[string]*catalog.Product)}
}

func (f *fakeAPI) ListProducts(context.Context, api.ProductFilter) ([]catalog.Product, *api.Pagination, error) {
	out := make([]catalog.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, &api.Pagination{Page: 1, Total: int64(len(out))}, nil
}

func (f *fakeAPI) GetProduct(_ context.Context, id string) (*catalog.Product, error) {
	f.gets++
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, api.ErrNotFound
}

func (f *fakeAPI) CreateProduct(_ context.Context, input api.ProductInput) (*catalog.Product, error) {
	p := &catalog.Product{ID: "new", Name: input.Name, Price: input.Price}
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeAPI) UpdateProduct(_ context.Context, id string, input api.ProductInput) (*catalog.Product, error) {
	p := &catalog.Product{ID: id, Name: input.Name, Price: input.Price}
	f.products[id] = p
	return p, nil
}

func (f *fakeAPI) DeleteProduct(_ context.Context, id string) error {
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) ListCategories(context.Context) ([]catalog.Category, error) {
	return []catalog.Category{{ID: "c1", Name: "Electronics"}}, nil
}

func (f *fakeAPI) GetCategory(_ context.Context, id string) (*catalog.Category, error) {
	return &catalog.Category{ID: id, Name: "Electronics"}, nil
}

func (f *fakeAPI) CreateCategory(_ context.Context, name string) (*catalog.Category, error) {
	return &catalog.Category{ID: "c2", Name: name}, nil
}

func (f *fakeAPI) UpdateCategory(_ context.Context, id, name string) (*catalog.Category, error) {
	return &catalog.Category{ID: id, Name: name}, nil
}

func (f *fakeAPI) DeleteCategory(context.Context, string) error { return nil }

func (f *fakeAPI) CreateSubcategory(_ context.Context, categoryID, name string) (*catalog.Subcategory, error) {
	return &catalog.Subcategory{ID: "s1", CategoryID: categoryID, Name: name}, nil
}

func (f *fakeAPI) UpdateSubcategory(_ context.Context, categoryID, subcategoryID, name string) (*catalog.Subcategory, error) {
	return &catalog.Subcategory{ID: subcategoryID, CategoryID: categoryID, Name: name}, nil
}

func (f *fakeAPI) DeleteSubcategory(context.Context, string, string) error { return nil }

func product(id, name string) *catalog.Product {
	return &catalog.Product{ID: id, Name: name, Price: decimal.RequireFromString("10.00")}
}

func TestService_ProductUsesCache(t *testing.T) {
	client := newFakeAPI()
	client.products["p1"] = product("p1", "Keyboard")
	svc := NewService(client, cache.NewInMemoryProductCache(time.Minute), zap.NewNop())
	ctx := context.Background()

	first, err := svc.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", first.Name)
	assert.Equal(t, 1, client.gets)

	_, err = svc.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, client.gets)
}

func TestService_ProductNotFound(t *testing.T) {
	svc := NewService(newFakeAPI(), nil, zap.NewNop())

	_, err := svc.Product(context.Background(), "ghost")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestService_UpdateProductRefreshesCache(t *testing.T) {
	client := newFakeAPI()
	client.products["p1"] = product("p1", "Keyboard")
	productCache := cache.NewInMemoryProductCache(time.Minute)
	svc := NewService(client, productCache, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Product(ctx, "p1")
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, "p1", api.ProductInput{Name: "Keyboard v2", Price: decimal.RequireFromString("89.99")})
	require.NoError(t, err)

	cached, err := productCache.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "Keyboard v2", cached.Name)
}

func TestService_DeleteProductEvictsCache(t *testing.T) {
	client := newFakeAPI()
	client.products["p1"] = product("p1", "Keyboard")
	productCache := cache.NewInMemoryProductCache(time.Minute)
	svc := NewService(client, productCache, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Product(ctx, "p1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, "p1"))

	cached, err := productCache.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, cached)
	assert.Equal(t, []string{"p1"}, client.deleted)
}

func TestService_Browse(t *testing.T) {
	client := newFakeAPI()
	client.products["p1"] = product("p1", "Keyboard")
	svc := NewService(client, nil, zap.NewNop())

	products, page, err := svc.Browse(context.Background(), api.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, int64(1), page.Total)
}
