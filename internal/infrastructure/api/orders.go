package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shop/storefront/internal/domain/order"
)

// OrderItemInput is one product line of a checkout request
type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderInput is the payload for placing a cash-on-delivery order
type OrderInput struct {
	Items       []OrderItemInput `json:"items"`
	Address     string           `json:"address"`
	PhoneNumber string           `json:"phoneNumber"`
	Notes       string           `json:"notes,omitempty"`
}

// OrderFilter narrows an order listing
type OrderFilter struct {
	Status order.Status
	Page   int
	Limit  int
}

func (f OrderFilter) query() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// CreateOrder places a new order from the given items
func (c *Client) CreateOrder(ctx context.Context, input OrderInput) (*order.Order, error) {
	env, err := c.do(ctx, http.MethodPost, "/orders", nil, input)
	if err != nil {
		return nil, err
	}
	o, err := decode[order.Order](env)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// MyOrders retrieves the authenticated user's order history
func (c *Client) MyOrders(ctx context.Context, filter OrderFilter) ([]order.Order, *Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, "/orders/my-orders", filter.query(), nil)
	if err != nil {
		return nil, nil, err
	}
	orders, err := decode[[]order.Order](env)
	if err != nil {
		return nil, nil, err
	}
	return orders, env.Pagination, nil
}

// ListOrders retrieves all orders (admin)
func (c *Client) ListOrders(ctx context.Context, filter OrderFilter) ([]order.Order, *Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, "/orders", filter.query(), nil)
	if err != nil {
		return nil, nil, err
	}
	orders, err := decode[[]order.Order](env)
	if err != nil {
		return nil, nil, err
	}
	return orders, env.Pagination, nil
}

// GetOrder retrieves a single order by id
func (c *Client) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	env, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	o, err := decode[order.Order](env)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderStatusUpdate carries the optional fields of a status update
type OrderStatusUpdate struct {
	Status         *order.Status `json:"status,omitempty"`
	TrackingNumber *string       `json:"trackingNumber,omitempty"`
}

// UpdateOrderStatus changes an order's status and/or tracking number (admin)
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, update OrderStatusUpdate) (*order.Order, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	env, err := c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(id)+"/status", nil, update)
	if err != nil {
		return nil, err
	}
	o, err := decode[order.Order](env)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOrder removes an order (admin)
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	_, err := c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
	return err
}
