//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"loyalty-rewards/internal/handler/httperr"
	"loyalty-rewards/internal/handler/middleware"
	"loyalty-rewards/internal/pkg/config"
	"loyalty-rewards/internal/pkg/errs"
	"loyalty-rewards/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(logger))
	r.Use(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))
	r.Use(middleware.ErrorHandler(logger))
	return r
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	r := newRouter(logger)
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generates a request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: ""})
		assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), rec.Body.String())
		assert.Contains(t, buf.String(), `"msg":"Request completed"`)
		assert.Contains(t, buf.String(), `"route":"/ok"`)
	})

	t.Run("keeps an incoming request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil,
			map[string]string{middleware.RequestIDHeader: "req-123"})

		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "req-123"})
		assert.Equal(t, "req-123", rec.Body.String())
		assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	})
}

func TestErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(slog.New(slog.NewJSONHandler(&buf, nil)))

	r.GET("/not-found", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("customer not found"), "Customer not found", nil)
	})
	r.GET("/failure", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("connection refused"), "Internal error", nil)
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("unhandled"))
	})
	r.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})

	t.Run("client errors are rendered without a stack log", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/not-found", nil, nil)

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Customer not found")
		assert.NotContains(t, buf.String(), "request failed")
	})

	t.Run("server errors are logged with their cause", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/failure", nil, nil)

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal error")
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.Contains(t, buf.String(), "request failed")
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("unrendered private errors become 500", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, nil)

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.Contains(t, buf.String(), "request failed")
		assert.Contains(t, buf.String(), "unhandled")
	})

	t.Run("panics are recovered and logged", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, nil)

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.Contains(t, buf.String(), "recovered from panic")
	})
}
