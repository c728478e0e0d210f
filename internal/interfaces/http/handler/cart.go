package handler

import (
	"github.com/gin-gonic/gin"

	cartapp "github.com/shop/storefront/internal/application/cart"
	catalogapp "github.com/shop/storefront/internal/application/catalog"
	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/domain/shared/valueobject"
)

// CartHandler exposes the cart facade over HTTP
type CartHandler struct {
	BaseHandler
	cart    *cartapp.Service
	catalog *catalogapp.Service
}

// NewCartHandler creates a cart handler
func NewCartHandler(cart *cartapp.Service, catalog *catalogapp.Service) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

// RegisterRoutes registers the cart endpoints
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.POST("", h.Add)
		cart.PATCH("/:productId", h.UpdateQuantity)
		cart.DELETE("/:productId", h.Remove)
		cart.DELETE("", h.Clear)
	}
}

// CartLineResponse is one cart line in a response
type CartLineResponse struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *catalog.Product `json:"product"`
}

// CartResponse is the full cart view with derived totals
type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice valueobject.Money  `json:"totalPrice"`
}

func (h *CartHandler) cartResponse() CartResponse {
	lines := h.cart.Items()
	items := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Product:   l.Product,
		})
	}
	return CartResponse{
		Items:      items,
		TotalItems: h.cart.TotalItems(),
		TotalPrice: h.cart.TotalPrice(),
	}
}

// Get returns the current cart
func (h *CartHandler) Get(c *gin.Context) {
	h.Success(c, h.cartResponse())
}

// AddCartRequest is the payload for adding a product to the cart
type AddCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Add puts a quantity of a product into the cart
func (h *CartHandler) Add(c *gin.Context) {
	var req AddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.cart.AddToCart(c.Request.Context(), product, req.Quantity); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.cartResponse())
}

// UpdateCartRequest is the payload for changing a line's quantity
type UpdateCartRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "quantity is required")
		return
	}

	if err := h.cart.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Quantity); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.cartResponse())
}

// Remove deletes a line from the cart
func (h *CartHandler) Remove(c *gin.Context) {
	if err := h.cart.RemoveFromCart(c.Request.Context(), c.Param("productId")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.cartResponse())
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.ClearCart(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.cartResponse())
}
