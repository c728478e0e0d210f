// Package order implements checkout from the current cart and order
// history, plus the admin order operations.
package order

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domaincart "github.com/shop/storefront/internal/domain/cart"
	"github.com/shop/storefront/internal/domain/order"
	"github.com/shop/storefront/internal/domain/shared"
	"github.com/shop/storefront/internal/infrastructure/api"
)

var validate = validator.New()

// API is the slice of the backend client the order service uses
type API interface {
	CreateOrder(ctx context.Context, input api.OrderInput) (*order.Order, error)
	MyOrders(ctx context.Context, filter api.OrderFilter) ([]order.Order, *api.Pagination, error)
	ListOrders(ctx context.Context, filter api.OrderFilter) ([]order.Order, *api.Pagination, error)
	GetOrder(ctx context.Context, id string) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, update api.OrderStatusUpdate) (*order.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// CartSource is the view of the cart the checkout needs
type CartSource interface {
	IsEmpty() bool
	Entries() []domaincart.Entry
	ClearCart(ctx context.Context) error
}

// AuthState reports whether a user session is active
type AuthState interface {
	Authenticated() bool
}

// CheckoutInput is a validated cash-on-delivery checkout request
type CheckoutInput struct {
	Address     string `json:"address" validate:"required,min=5"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=5"`
	Notes       string `json:"notes" validate:"max=500"`
}

// Service handles checkout and order management
type Service struct {
	client API
	cart   CartSource
	auth   AuthState
	logger *zap.Logger
}

// NewService creates an order service
func NewService(client API, cart CartSource, auth AuthState, logger *zap.Logger) *Service {
	return &Service{client: client, cart: cart, auth: auth, logger: logger}
}

// Checkout places an order from the current cart, then clears the cart.
// Requires a signed-in session and a non-empty cart; nothing changes
// when either precondition fails.
func (s *Service) Checkout(ctx context.Context, input CheckoutInput) (*order.Order, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrSignInRequired
	}
	if s.cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}
	if err := validate.Struct(input); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	entries := s.cart.Entries()
	items := make([]api.OrderItemInput, 0, len(entries))
	for _, e := range entries {
		items = append(items, api.OrderItemInput{ProductID: e.ProductID, Quantity: e.Quantity})
	}

	placed, err := s.client.CreateOrder(ctx, api.OrderInput{
		Items:       items,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		Notes:       input.Notes,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		s.logger.Warn("failed to clear cart after checkout", zap.String("order_id", placed.ID), zap.Error(err))
	}
	s.logger.Info("order placed", zap.String("order_id", placed.ID), zap.Int("items", len(items)))
	return placed, nil
}

// History returns the signed-in user's orders
func (s *Service) History(ctx context.Context, filter api.OrderFilter) ([]order.Order, *api.Pagination, error) {
	if !s.auth.Authenticated() {
		return nil, nil, shared.ErrSignInRequired
	}
	return s.client.MyOrders(ctx, filter)
}

// Get returns one order by id
func (s *Service) Get(ctx context.Context, id string) (*order.Order, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrSignInRequired
	}
	return s.client.GetOrder(ctx, id)
}

// All lists every order (admin)
func (s *Service) All(ctx context.Context, filter api.OrderFilter) ([]order.Order, *api.Pagination, error) {
	if !s.auth.Authenticated() {
		return nil, nil, shared.ErrSignInRequired
	}
	return s.client.ListOrders(ctx, filter)
}

// UpdateStatus changes an order's status or tracking number (admin)
func (s *Service) UpdateStatus(ctx context.Context, id string, update api.OrderStatusUpdate) (*order.Order, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrSignInRequired
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	return s.client.UpdateOrderStatus(ctx, id, update)
}

// Delete removes an order (admin)
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.auth.Authenticated() {
		return shared.ErrSignInRequired
	}
	return s.client.DeleteOrder(ctx, id)
}
