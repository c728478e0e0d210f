package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shop/storefront/internal/infrastructure/logger"
)

func serveWithRequestID(t *testing.T, headerID string) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	engine := gin.New()
	engine.Use(RequestID())
	engine.Use(logger.GinMiddleware(zap.New(core)))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if headerID != "" {
		req.Header.Set(RequestIDHeader, headerID)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w, logs
}

func TestRequestID_SuppliedIDReachesLogs(t *testing.T) {
	w, logs := serveWithRequestID(t, "req-abc-123")

	assert.Equal(t, "req-abc-123", w.Header().Get(RequestIDHeader))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-abc-123", entries[0].ContextMap()["request_id"])
}

func TestRequestID_GeneratesIDWhenAbsent(t *testing.T) {
	w, logs := serveWithRequestID(t, "")

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
}
