// Package catalog exposes browse and admin operations over the backend
// catalog, with a read-through cache for single-product lookups.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/infrastructure/api"
	"github.com/shop/storefront/internal/infrastructure/cache"
)

// API is the slice of the backend client the catalog service uses
type API interface {
	ListProducts(ctx context.Context, filter api.ProductFilter) ([]catalog.Product, *api.Pagination, error)
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
	CreateProduct(ctx context.Context, input api.ProductInput) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, id string, input api.ProductInput) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]catalog.Category, error)
	GetCategory(ctx context.Context, id string) (*catalog.Category, error)
	CreateCategory(ctx context.Context, name string) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*catalog.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateSubcategory(ctx context.Context, categoryID, name string) (*catalog.Subcategory, error)
	UpdateSubcategory(ctx context.Context, categoryID, subcategoryID, name string) (*catalog.Subcategory, error)
	DeleteSubcategory(ctx context.Context, categoryID, subcategoryID string) error
}

// Service handles catalog browsing and admin catalog management
type Service struct {
	client API
	cache  cache.ProductCache
	logger *zap.Logger
}

// NewService creates a catalog service. The cache may be nil.
func NewService(client API, productCache cache.ProductCache, logger *zap.Logger) *Service {
	return &Service{client: client, cache: productCache, logger: logger}
}

// Browse returns a filtered, paginated product listing
func (s *Service) Browse(ctx context.Context, filter api.ProductFilter) ([]catalog.Product, *api.Pagination, error) {
	return s.client.ListProducts(ctx, filter)
}

// Product returns one product, serving repeat lookups from the cache
func (s *Service) Product(ctx context.Context, id string) (*catalog.Product, error) {
	if s.cache != nil {
		if product, err := s.cache.Get(ctx, id); err == nil && product != nil {
			return product, nil
		}
	}

	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, product)
	return product, nil
}

// Categories returns all categories with their subcategories
func (s *Service) Categories(ctx context.Context) ([]catalog.Category, error) {
	return s.client.ListCategories(ctx)
}

// Category returns one category by id
func (s *Service) Category(ctx context.Context, id string) (*catalog.Category, error) {
	return s.client.GetCategory(ctx, id)
}

// CreateProduct creates a product (admin)
func (s *Service) CreateProduct(ctx context.Context, input api.ProductInput) (*catalog.Product, error) {
	product, err := s.client.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, product)
	return product, nil
}

// UpdateProduct updates a product and refreshes its cached snapshot (admin)
func (s *Service) UpdateProduct(ctx context.Context, id string, input api.ProductInput) (*catalog.Product, error) {
	product, err := s.client.UpdateProduct(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, product)
	return product, nil
}

// DeleteProduct deletes a product and evicts its cached snapshot (admin)
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Remove(ctx, id); err != nil {
			s.logger.Warn("failed to evict cached product", zap.String("product_id", id), zap.Error(err))
		}
	}
	return nil
}

// CreateCategory creates a category (admin)
func (s *Service) CreateCategory(ctx context.Context, name string) (*catalog.Category, error) {
	return s.client.CreateCategory(ctx, name)
}

// UpdateCategory renames a category (admin)
func (s *Service) UpdateCategory(ctx context.Context, id, name string) (*catalog.Category, error) {
	return s.client.UpdateCategory(ctx, id, name)
}

// DeleteCategory deletes a category (admin)
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.client.DeleteCategory(ctx, id)
}

// CreateSubcategory adds a subcategory (admin)
func (s *Service) CreateSubcategory(ctx context.Context, categoryID, name string) (*catalog.Subcategory, error) {
	return s.client.CreateSubcategory(ctx, categoryID, name)
}

// UpdateSubcategory renames a subcategory (admin)
func (s *Service) UpdateSubcategory(ctx context.Context, categoryID, subcategoryID, name string) (*catalog.Subcategory, error) {
	return s.client.UpdateSubcategory(ctx, categoryID, subcategoryID, name)
}

// DeleteSubcategory deletes a subcategory (admin)
func (s *Service) DeleteSubcategory(ctx context.Context, categoryID, subcategoryID string) error {
	return s.client.DeleteSubcategory(ctx, categoryID, subcategoryID)
}

func (s *Service) cacheSet(ctx context.Context, product *catalog.Product) {
	if s.cache == nil || product == nil {
		return
	}
	if err := s.cache.Set(ctx, product); err != nil {
		s.logger.Debug("failed to cache product", zap.String("product_id", product.ID), zap.Error(err))
	}
}
