package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shop/storefront/internal/domain/catalog"
)

// ReviewFilter narrows a review listing
type ReviewFilter struct {
	ProductID string
	UserID    string
	Page      int
	Limit     int
}

func (f ReviewFilter) query() url.Values {
	v := url.Values{}
	if f.ProductID != "" {
		v.Set("productId", f.ProductID)
	}
	if f.UserID != "" {
		v.Set("userId", f.UserID)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// ListReviews retrieves a filtered page of reviews
func (c *Client) ListReviews(ctx context.Context, filter ReviewFilter) ([]catalog.Review, *Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, "/reviews", filter.query(), nil)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := decode[[]catalog.Review](env)
	if err != nil {
		return nil, nil, err
	}
	return reviews, env.Pagination, nil
}

// ReviewInput is the payload for writing a review
type ReviewInput struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Text      string `json:"text,omitempty"`
}

// CreateReview submits a new review for a product
func (c *Client) CreateReview(ctx context.Context, input ReviewInput) (*catalog.Review, error) {
	env, err := c.do(ctx, http.MethodPost, "/reviews", nil, input)
	if err != nil {
		return nil, err
	}
	review, err := decode[catalog.Review](env)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ReviewUpdate carries the optional fields of a review edit
type ReviewUpdate struct {
	Rating *int    `json:"rating,omitempty"`
	Text   *string `json:"text,omitempty"`
}

// UpdateReview edits an existing review
func (c *Client) UpdateReview(ctx context.Context, id string, update ReviewUpdate) (*catalog.Review, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	env, err := c.do(ctx, http.MethodPatch, "/reviews/"+url.PathEscape(id), nil, update)
	if err != nil {
		return nil, err
	}
	review, err := decode[catalog.Review](env)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	_, err := c.do(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil, nil)
	return err
}
