package handler

import (
	"github.com/gin-gonic/gin"

	wishlistapp "github.com/shop/storefront/internal/application/wishlist"
)

// WishlistHandler exposes the signed-in user's wishlist
type WishlistHandler struct {
	BaseHandler
	wishlist *wishlistapp.Service
}

// NewWishlistHandler creates a wishlist handler
func NewWishlistHandler(wishlist *wishlistapp.Service) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// RegisterRoutes registers the wishlist endpoints
func (h *WishlistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", h.List)
		wishlist.POST("", h.Add)
		wishlist.DELETE("/:productId", h.Remove)
		wishlist.GET("/check/:productId", h.Check)
	}
}

// List returns the wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.wishlist.Items(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// AddWishlistRequest is the payload for saving a product
type AddWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// Add saves a product to the wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	var req AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "productId is required")
		return
	}

	if err := h.wishlist.Add(c.Request.Context(), req.ProductID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Remove takes a product off the wishlist
func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.wishlist.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Check reports whether a product is on the wishlist
func (h *WishlistHandler) Check(c *gin.Context) {
	in, err := h.wishlist.Contains(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"isInWishlist": in})
}
