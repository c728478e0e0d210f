package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogapp "github.com/shop/storefront/internal/application/catalog"
	"github.com/shop/storefront/internal/infrastructure/api"
)

// CatalogHandler exposes product and category browsing, plus the admin
// catalog management endpoints.
type CatalogHandler struct {
	BaseHandler
	catalog *catalogapp.Service
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(catalog *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// RegisterRoutes registers the catalog endpoints
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", h.CreateCategory)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
		categories.POST("/:id/subcategories", h.CreateSubcategory)
		categories.PATCH("/:id/subcategories/:subId", h.UpdateSubcategory)
		categories.DELETE("/:id/subcategories/:subId", h.DeleteSubcategory)
	}
}

// productFilter builds a backend filter from list query parameters
func productFilter(c *gin.Context) (api.ProductFilter, error) {
	filter := api.ProductFilter{
		CategoryID:    c.Query("categoryId"),
		SubcategoryID: c.Query("subcategoryId"),
		Search:        c.Query("search"),
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &max
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	return filter, nil
}

// ListProducts returns a filtered, paginated product listing
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter, err := productFilter(c)
	if err != nil {
		h.BadRequest(c, "invalid price filter")
		return
	}

	products, page, err := h.catalog.Browse(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, page)
}

// GetProduct returns one product
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// CreateProduct creates a product (admin)
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var input api.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "invalid product payload")
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// UpdateProduct replaces a product's details (admin)
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var input api.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "invalid product payload")
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// DeleteProduct removes a product (admin)
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListCategories returns all categories with subcategories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// GetCategory returns one category
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalog.Category(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// NameRequest is a payload carrying just a name
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory creates a category (admin)
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "name is required")
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// UpdateCategory renames a category (admin)
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "name is required")
		return
	}

	category, err := h.catalog.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// DeleteCategory removes a category (admin)
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateSubcategory adds a subcategory (admin)
func (h *CatalogHandler) CreateSubcategory(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "name is required")
		return
	}

	sub, err := h.catalog.CreateSubcategory(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sub)
}

// UpdateSubcategory renames a subcategory (admin)
func (h *CatalogHandler) UpdateSubcategory(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "name is required")
		return
	}

	sub, err := h.catalog.UpdateSubcategory(c.Request.Context(), c.Param("id"), c.Param("subId"), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sub)
}

// DeleteSubcategory removes a subcategory (admin)
func (h *CatalogHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.catalog.DeleteSubcategory(c.Request.Context(), c.Param("id"), c.Param("subId")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
