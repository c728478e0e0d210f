package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartapp "github.com/shop/storefront/internal/application/cart"
	catalogapp "github.com/shop/storefront/internal/application/catalog"
	domaincart "github.com/shop/storefront/internal/domain/cart"
	"github.com/shop/storefront/internal/domain/catalog"
	"github.com/shop/storefront/internal/infrastructure/api"
	"github.com/shop/storefront/internal/interfaces/http/router"
)

// stubBackend fakes the slices of the backend client the cart and
// catalog services need for a guest session.
type stubBackend struct {
	products map[string]*catalog.Product
}

func (s *stubBackend) GetProduct(_ context.Context, id string) (*catalog.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, &api.Error{Status: http.StatusNotFound, Message: "Product not found"}
}

func (s *stubBackend) ListProducts(context.Context, api.ProductFilter) ([]catalog.Product, *api.Pagination, error) {
	return nil, nil, nil
}

func (s *stubBackend) CreateProduct(context.Context, api.ProductInput) (*catalog.Product, error) {
	return nil, nil
}

func (s *stubBackend) UpdateProduct(context.Context, string, api.ProductInput) (*catalog.Product, error) {
	return nil, nil
}

func (s *stubBackend) DeleteProduct(context.Context, string) error { return nil }

func (s *stubBackend) ListCategories(context.Context) ([]catalog.Category, error) { return nil, nil }

func (s *stubBackend) GetCategory(context.Context, string) (*catalog.Category, error) {
	return nil, nil
}

func (s *stubBackend) CreateCategory(context.Context, string) (*catalog.Category, error) {
	return nil, nil
}

func (s *stubBackend) UpdateCategory(context.Context, string, string) (*catalog.Category, error) {
	return nil, nil
}

func (s *stubBackend) DeleteCategory(context.Context, string) error { return nil }

func (s *stubBackend) CreateSubcategory(context.Context, string, string) (*catalog.Subcategory, error) {
	return nil, nil
}

func (s *stubBackend) UpdateSubcategory(context.Context, string, string, string) (*catalog.Subcategory, error) {
	return nil, nil
}

func (s *stubBackend) DeleteSubcategory(context.Context, string, string) error { return nil }

// Remote cart calls never happen for a guest session.
func (s *stubBackend) FetchCart(context.Context) ([]api.CartItem, error) { return nil, nil }
func (s *stubBackend) AddCartItem(context.Context, string, int) error    { return nil }
func (s *stubBackend) UpdateCartItem(context.Context, string, int) error { return nil }
func (s *stubBackend) RemoveCartItem(context.Context, string) error      { return nil }
func (s *stubBackend) ClearCart(context.Context) error                   { return nil }

type guestAuth struct{}

func (guestAuth) Authenticated() bool { return false }

type memStore struct {
	entries []domaincart.Entry
}

func (m *memStore) Load() []domaincart.Entry { return m.entries }
func (m *memStore) Save(entries []domaincart.Entry) error {
	m.entries = entries
	return nil
}

func newTestEngine(t *testing.T) (*gin.Engine, *stubBackend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := &stubBackend{products: map[string]*catalog.Product{
		"p1": {ID: "p1", Name: "Keyboard", Price: decimal.RequireFromString("79.99"), Stock: 10},
		"p2": {ID: "p2", Name: "Mouse", Price: decimal.RequireFromString("19.99"), Stock: 5},
	}}

	log := zap.NewNop()
	resolver := cartapp.NewResolver(backend, nil, log)
	cartService := cartapp.NewService(backend, guestAuth{}, resolver, &memStore{}, cartapp.NewLogNotifier(log), log)
	catalogService := catalogapp.NewService(backend, nil, log)

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewCartHandler(cartService, catalogService))
	r.Setup()
	return engine, backend
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var payload map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func cartData(t *testing.T, payload map[string]any) map[string]any {
	t.Helper()
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok, "response has no data object")
	return data
}

func totalPrice(t *testing.T, data map[string]any) string {
	t.Helper()
	price, ok := data["totalPrice"].(map[string]any)
	require.True(t, ok, "response has no totalPrice object")
	return price["amount"].(string)
}

func TestCartHandler_EmptyCart(t *testing.T) {
	engine, _ := newTestEngine(t)

	w, payload := doJSON(t, engine, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, payload)
	assert.Equal(t, float64(0), data["totalItems"])
	assert.Empty(t, data["items"])
}

func TestCartHandler_AddAndTotals(t *testing.T) {
	engine, _ := newTestEngine(t)

	w, payload := doJSON(t, engine, http.MethodPost, "/api/v1/cart", `{"productId":"p1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, payload)
	assert.Equal(t, float64(2), data["totalItems"])
	assert.Equal(t, "159.98", totalPrice(t, data))

	// Defaults quantity to 1 and merges into the existing line.
	w, payload = doJSON(t, engine, http.MethodPost, "/api/v1/cart", `{"productId":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	data = cartData(t, payload)
	assert.Equal(t, float64(3), data["totalItems"])
	items := data["items"].([]any)
	assert.Len(t, items, 1)
}

func TestCartHandler_AddUnknownProduct(t *testing.T) {
	engine, _ := newTestEngine(t)

	w, payload := doJSON(t, engine, http.MethodPost, "/api/v1/cart", `{"productId":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, payload["success"])
}

func TestCartHandler_AddMissingProductID(t *testing.T) {
	engine, _ := newTestEngine(t)

	w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/cart", `{"quantity":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_UpdateToZeroRemovesLine(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/cart", `{"productId":"p1","quantity":2}`)
	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/cart", `{"productId":"p2","quantity":1}`)

	w, payload := doJSON(t, engine, http.MethodPatch, "/api/v1/cart/p1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := cartData(t, payload)
	assert.Equal(t, float64(1), data["totalItems"])
	assert.Equal(t, "19.99", totalPrice(t, data))
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/cart", `{"productId":"p1","quantity":2}`)
	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/cart", `{"productId":"p2","quantity":1}`)

	w, payload := doJSON(t, engine, http.MethodDelete, "/api/v1/cart/p1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), cartData(t, payload)["totalItems"])

	w, payload = doJSON(t, engine, http.MethodDelete, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), cartData(t, payload)["totalItems"])
}
