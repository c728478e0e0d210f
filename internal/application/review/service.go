// Package review handles product reviews: public listing, and writing
// or editing for signed-in users.
package review

import (
	"context"

	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/domain/shared"
	"github.com/shop/storefront/internal/infrastructure/api"
)

// API is the slice of the backend client the review service uses
type API interface {
	ListReviews(ctx context.Context, filter api.ReviewFilter) ([]catalog.Review, *api.Pagination, error)
	CreateReview(ctx context.Context, input api.ReviewInput) (*catalog.Review, error)
	UpdateReview(ctx context.Context, id string, update api.ReviewUpdate) (*catalog.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// AuthState reports whether a user session is active
type AuthState interface {
	Authenticated() bool
}

// Service handles review operations
type Service struct {
	client API
	auth   AuthState
	logger *zap.Logger
}

// NewService creates a review service
func NewService(client API, auth AuthState, logger *zap.Logger) *Service {
	return &Service{client: client, auth: auth, logger: logger}
}

// ForProduct lists the reviews of one product, newest first per the
// backend's default ordering.
func (s *Service) ForProduct(ctx context.Context, productID string, page, limit int) ([]catalog.Review, *api.Pagination, error) {
	if productID == "" {
		return nil, nil, shared.ErrInvalidInput
	}
	return s.client.ListReviews(ctx, api.ReviewFilter{ProductID: productID, Page: page, Limit: limit})
}

// Write submits a review for a product
func (s *Service) Write(ctx context.Context, input api.ReviewInput) (*catalog.Review, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrSignInRequired
	}
	if input.ProductID == "" {
		return nil, shared.ErrInvalidInput
	}
	if !catalog.ValidRating(input.Rating) {
		return nil, shared.ErrInvalidRating
	}
	return s.client.CreateReview(ctx, input)
}

// Edit updates the caller's own review
func (s *Service) Edit(ctx context.Context, id string, update api.ReviewUpdate) (*catalog.Review, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrSignInRequired
	}
	if update.Rating != nil && !catalog.ValidRating(*update.Rating) {
		return nil, shared.ErrInvalidRating
	}
	return s.client.UpdateReview(ctx, id, update)
}

// Delete removes the caller's own review (or any review, for admins)
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.auth.Authenticated() {
		return shared.ErrSignInRequired
	}
	return s.client.DeleteReview(ctx, id)
}
