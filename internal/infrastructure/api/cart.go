package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shop/storefront/internal/domain/catalog"
)

// CartItem is one line of the server-side cart. The backend hydrates the
// product snapshot itself.
type CartItem struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *catalog.Product `json:"product"`
}

// FetchCart retrieves the canonical server-side cart for the
// authenticated user.
func (c *Client) FetchCart(ctx context.Context) ([]CartItem, error) {
	env, err := c.do(ctx, http.MethodGet, "/cart", nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]CartItem](env)
}

// Cart mutations deliberately discard the backend's per-mutation payload:
// callers re-fetch the canonical list after success, the server's
// post-mutation snapshot always wins.

// AddCartItem adds a quantity of a product to the server-side cart
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return ErrEmptyProductID
	}
	body := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}

	_, err := c.do(ctx, http.MethodPost, "/cart", nil, body)
	return err
}

// UpdateCartItem sets the quantity of a product in the server-side cart
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return ErrEmptyProductID
	}
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}

	_, err := c.do(ctx, http.MethodPatch, "/cart/"+url.PathEscape(productID), nil, body)
	return err
}

// RemoveCartItem removes a product from the server-side cart
func (c *Client) RemoveCartItem(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrEmptyProductID
	}
	_, err := c.do(ctx, http.MethodDelete, "/cart/"+url.PathEscape(productID), nil, nil)
	return err
}

// ClearCart removes every line from the server-side cart
func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/cart", nil, nil)
	return err
}
