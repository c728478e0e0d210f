package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shop/storefront/internal/domain/catalog"
)

// ProductFilter narrows and orders a catalog listing
type ProductFilter struct {
	CategoryID    string
	SubcategoryID string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Search        string
	SortBy        string // price, rating, name, createdAt
	SortOrder     string // asc, desc
	Page          int
	Limit         int
}

// query converts the filter into backend query parameters
func (f ProductFilter) query() url.Values {
	v := url.Values{}
	if f.CategoryID != "" {
		v.Set("categoryId", f.CategoryID)
	}
	if f.SubcategoryID != "" {
		v.Set("subcategoryId", f.SubcategoryID)
	}
	if f.MinPrice != nil {
		v.Set("minPrice", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		v.Set("maxPrice", f.MaxPrice.String())
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.SortBy != "" {
		v.Set("sortBy", f.SortBy)
	}
	if f.SortOrder != "" {
		v.Set("sortOrder", f.SortOrder)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// ListProducts retrieves a filtered page of the catalog
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]catalog.Product, *Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, "/products", filter.query(), nil)
	if err != nil {
		return nil, nil, err
	}
	products, err := decode[[]catalog.Product](env)
	if err != nil {
		return nil, nil, err
	}
	return products, env.Pagination, nil
}

// GetProduct retrieves a single product by id
func (c *Client) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	if id == "" {
		return nil, ErrEmptyProductID
	}
	env, err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	product, err := decode[catalog.Product](env)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductInput is the payload for creating or replacing a product
type ProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId"`
	Stock         int             `json:"stock"`
}

// CreateProduct creates a new product (admin)
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*catalog.Product, error) {
	env, err := c.do(ctx, http.MethodPost, "/products", nil, input)
	if err != nil {
		return nil, err
	}
	product, err := decode[catalog.Product](env)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a product's details (admin)
func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (*catalog.Product, error) {
	if id == "" {
		return nil, ErrEmptyProductID
	}
	env, err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), nil, input)
	if err != nil {
		return nil, err
	}
	product, err := decode[catalog.Product](env)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product from the catalog (admin)
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyProductID
	}
	_, err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
	return err
}
