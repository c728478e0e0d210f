package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/shop/storefront/internal/application/order"
	"github.com/shop/storefront/internal/domain/order"
	"github.com/shop/storefront/internal/infrastructure/api"
)

// OrderHandler exposes checkout, order history, and the admin order
// endpoints.
type OrderHandler struct {
	BaseHandler
	orders *orderapp.Service
}

// NewOrderHandler creates an order handler
func NewOrderHandler(orders *orderapp.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// RegisterRoutes registers the order endpoints
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Checkout)
		orders.GET("/my-orders", h.History)
		orders.GET("", h.ListAll)
		orders.GET("/:id", h.Get)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.DELETE("/:id", h.Delete)
	}
}

// Checkout places an order from the current cart
func (h *OrderHandler) Checkout(c *gin.Context) {
	var input orderapp.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "invalid checkout payload")
		return
	}

	placed, err := h.orders.Checkout(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, placed)
}

func orderFilter(c *gin.Context) api.OrderFilter {
	filter := api.OrderFilter{Status: order.Status(c.Query("status"))}
	filter.Page, filter.Limit = pageParams(c)
	return filter
}

// History returns the signed-in user's orders
func (h *OrderHandler) History(c *gin.Context) {
	orders, page, err := h.orders.History(c.Request.Context(), orderFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, page)
}

// ListAll lists every order (admin)
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, page, err := h.orders.All(c.Request.Context(), orderFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, page)
}

// Get returns one order
func (h *OrderHandler) Get(c *gin.Context) {
	placed, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, placed)
}

// UpdateStatus changes an order's status or tracking number (admin)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var update api.OrderStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.BadRequest(c, "invalid status payload")
		return
	}

	placed, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, placed)
}

// Delete removes an order (admin)
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
