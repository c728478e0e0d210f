package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shop/storefront/internal/domain/catalog"
)

type categoryName struct {
	Name string `json:"name"`
}

// ListCategories retrieves all categories with their subcategories
func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	env, err := c.do(ctx, http.MethodGet, "/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]catalog.Category](env)
}

// GetCategory retrieves a single category by id
func (c *Client) GetCategory(ctx context.Context, id string) (*catalog.Category, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	env, err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	category, err := decode[catalog.Category](env)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory creates a new top-level category (admin)
func (c *Client) CreateCategory(ctx context.Context, name string) (*catalog.Category, error) {
	env, err := c.do(ctx, http.MethodPost, "/categories", nil, categoryName{Name: name})
	if err != nil {
		return nil, err
	}
	category, err := decode[catalog.Category](env)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category (admin)
func (c *Client) UpdateCategory(ctx context.Context, id, name string) (*catalog.Category, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	env, err := c.do(ctx, http.MethodPatch, "/categories/"+url.PathEscape(id), nil, categoryName{Name: name})
	if err != nil {
		return nil, err
	}
	category, err := decode[catalog.Category](env)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category (admin)
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	_, err := c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
	return err
}

// CreateSubcategory adds a subcategory under a category (admin)
func (c *Client) CreateSubcategory(ctx context.Context, categoryID, name string) (*catalog.Subcategory, error) {
	if categoryID == "" {
		return nil, ErrEmptyID
	}
	path := "/categories/" + url.PathEscape(categoryID) + "/subcategories"
	env, err := c.do(ctx, http.MethodPost, path, nil, categoryName{Name: name})
	if err != nil {
		return nil, err
	}
	sub, err := decode[catalog.Subcategory](env)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubcategory renames a subcategory (admin)
func (c *Client) UpdateSubcategory(ctx context.Context, categoryID, subcategoryID, name string) (*catalog.Subcategory, error) {
	if categoryID == "" || subcategoryID == "" {
		return nil, ErrEmptyID
	}
	path := "/categories/" + url.PathEscape(categoryID) + "/subcategories/" + url.PathEscape(subcategoryID)
	env, err := c.do(ctx, http.MethodPatch, path, nil, categoryName{Name: name})
	if err != nil {
		return nil, err
	}
	sub, err := decode[catalog.Subcategory](env)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteSubcategory removes a subcategory (admin)
func (c *Client) DeleteSubcategory(ctx context.Context, categoryID, subcategoryID string) error {
	if categoryID == "" || subcategoryID == "" {
		return ErrEmptyID
	}
	path := "/categories/" + url.PathEscape(categoryID) + "/subcategories/" + url.PathEscape(subcategoryID)
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}
