package handler

import (
	"github.com/gin-gonic/gin"

	reviewapp "github.com/shop/storefront/internal/application/review"
	"github.com/shop/storefront/internal/infrastructure/api"
)

// ReviewHandler exposes product reviews
type ReviewHandler struct {
	BaseHandler
	reviews *reviewapp.Service
}

// NewReviewHandler creates a review handler
func NewReviewHandler(reviews *reviewapp.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// RegisterRoutes registers the review endpoints
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.POST("", h.Create)
		reviews.PATCH("/:id", h.Update)
		reviews.DELETE("/:id", h.Delete)
	}
}

// List returns the reviews of a product
func (h *ReviewHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	reviews, pagination, err := h.reviews.ForProduct(c.Request.Context(), c.Query("productId"), page, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, reviews, pagination)
}

// Create submits a review
func (h *ReviewHandler) Create(c *gin.Context) {
	var input api.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "invalid review payload")
		return
	}

	review, err := h.reviews.Write(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, review)
}

// Update edits the caller's review
func (h *ReviewHandler) Update(c *gin.Context) {
	var update api.ReviewUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.BadRequest(c, "invalid review payload")
		return
	}

	review, err := h.reviews.Edit(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, review)
}

// Delete removes a review
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviews.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
