// Package wishlist wraps the backend wishlist, which exists only for
// signed-in users.
package wishlist

import (
	"context"

	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/shared"
	"github.com/shop/storefront/internal/infrastructure/api"
)

// API is the slice of the backend client the wishlist service uses
type API interface {
	FetchWishlist(ctx context.Context) ([]api.WishlistItem, error)
	AddWishlistItem(ctx context.Context, productID string) error
	RemoveWishlistItem(ctx context.Context, productID string) error
	CheckWishlist(ctx context.Context, productID string) (bool, error)
}

// AuthState reports whether a user session is active
type AuthState interface {
	Authenticated() bool
}

// Service handles wishlist operations
type Service struct {
	client API
	auth   AuthState
	logger *zap.Logger
}

// NewService creates a wishlist service
func NewService(client API, auth AuthState, logger *zap.Logger) *Service {
	return &Service{client: client, auth: auth, logger: logger}
}

// Items returns the signed-in user's wishlist
func (s *Service) Items(ctx context.Context) ([]api.WishlistItem, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrSignInRequired
	}
	return s.client.FetchWishlist(ctx)
}

// Add saves a product to the wishlist
func (s *Service) Add(ctx context.Context, productID string) error {
	if !s.auth.Authenticated() {
		return shared.ErrSignInRequired
	}
	if productID == "" {
		return shared.ErrInvalidInput
	}
	return s.client.AddWishlistItem(ctx, productID)
}

// Remove takes a product off the wishlist
func (s *Service) Remove(ctx context.Context, productID string) error {
	if !s.auth.Authenticated() {
		return shared.ErrSignInRequired
	}
	if productID == "" {
		return shared.ErrInvalidInput
	}
	return s.client.RemoveWishlistItem(ctx, productID)
}

// Contains reports whether a product is on the wishlist. For guests it
// is always false, without a backend round trip.
func (s *Service) Contains(ctx context.Context, productID string) (bool, error) {
	if !s.auth.Authenticated() {
		return false, nil
	}
	if productID == "" {
		return false, shared.ErrInvalidInput
	}
	return s.client.CheckWishlist(ctx, productID)
}
