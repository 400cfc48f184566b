//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"doglivebot/internal/handler/middleware"
	"doglivebot/internal/pkg/config"
	"doglivebot/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	var seen string
	r := gin.New()
	r.Use(middleware.CustomRecovery(), logger.LoggingMiddleware(), middleware.ErrorHandler())
	r.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r, &seen
}

func TestLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	r, seen := newRouter(t)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, map[string]string{"X-Request-ID": "req-123"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "req-123", *seen)
	httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-123"})
}

func TestLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	r, seen := newRouter(t)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, nil)

	id := rec.Header().Get("X-Request-ID")
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, *seen)
}

func TestCustomRecovery_ReturnsInternalError(t *testing.T) {
	r, _ := newRouter(t)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, map[string]string{"X-Request-ID": "req-9"})

	resp := httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.Equal(t, "req-9", resp.RequestID)
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(origins ...string) *gin.Engine {
		cfg := config.NewTestConfig().CORS
		cfg.AllowOrigins = origins
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	t.Run("no origins configured", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newEngine(), http.MethodGet, "/ping", nil, map[string]string{"Origin": "http://dash.local"})
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allowed origin", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newEngine("http://dash.local"), http.MethodGet, "/ping", nil, map[string]string{"Origin": "http://dash.local"})
		httptest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": "http://dash.local"})
	})
}
