package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shop/storefront/internal/domain/catalog"
)

// WishlistItem is one saved product on the authenticated user's wishlist
type WishlistItem struct {
	ProductID string           `json:"productId"`
	Product   *catalog.Product `json:"product"`
}

// FetchWishlist retrieves the authenticated user's wishlist
func (c *Client) FetchWishlist(ctx context.Context) ([]WishlistItem, error) {
	env, err := c.do(ctx, http.MethodGet, "/wishlist", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]WishlistItem](env)
}

// AddWishlistItem saves a product to the wishlist
func (c *Client) AddWishlistItem(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrEmptyProductID
	}
	body := struct {
		ProductID string `json:"productId"`
	}{ProductID: productID}

	_, err := c.do(ctx, http.MethodPost, "/wishlist", nil, body)
	return err
}

// RemoveWishlistItem removes a product from the wishlist
func (c *Client) RemoveWishlistItem(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrEmptyProductID
	}
	_, err := c.do(ctx, http.MethodDelete, "/wishlist/"+url.PathEscape(productID), nil, nil)
	return err
}

// CheckWishlist reports whether a product is on the wishlist
func (c *Client) CheckWishlist(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, ErrEmptyProductID
	}
	env, err := c.do(ctx, http.MethodGet, "/wishlist/check/"+url.PathEscape(productID), nil, nil)
	if err != nil {
		return false, err
	}
	result, err := decode[struct {
		IsInWishlist bool `json:"isInWishlist"`
	}](env)
	if err != nil {
		return false, err
	}
	return result.IsInWishlist, nil
}
