package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware_InjectsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		require.NotNil(t, logger)
		logger.Info("inside handler")
		assert.Same(t, logger, middleware.GetLoggerFromContext(c))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
}

func TestStructuredLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestGetLoggerFromCtx_MissingLogger(t *testing.T) {
	assert.Nil(t, middleware.GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestClientIDMiddleware(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(middleware.ClientIDMiddleware())
	r.GET("/who", func(c *gin.Context) {
		seen, _ = middleware.GetClientIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set(middleware.ClientIDHeader, "pwa-42")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "pwa-42", seen)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/who", nil))
	assert.Equal(t, "anonymous", seen)
}

func TestRateLimit(t *testing.T) {
	rate, err := limiter.NewRateFromFormatted("2-M")
	require.NoError(t, err)
	lim := limiter.New(memory.NewStore(), rate)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestPosthogMiddleware_NilClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(middleware.PosthogMiddleware(nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

type recordingQueue struct {
	events []posthog.Capture
}

func (q *recordingQueue) Enqueue(m posthog.Message) error {
	if capture, ok := m.(posthog.Capture); ok {
		q.events = append(q.events, capture)
	}
	return nil
}

func (q *recordingQueue) Close() error { return nil }

func TestPosthogEvent_UsesClientFromMiddleware(t *testing.T) {
	queue := &recordingQueue{}
	client := utils.NewPosthogClientWrapper(queue, slog.Default())

	r := gin.New()
	r.Use(middleware.ClientIDMiddleware(), middleware.PosthogMiddleware(client))
	r.POST("/api/v1/backup/restore", func(c *gin.Context) {
		middleware.PosthogEvent(c, "backup_restored", map[string]any{"expenses": 2})
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backup/restore", nil)
	req.Header.Set(middleware.ClientIDHeader, "web-1")
	r.ServeHTTP(w, req)

	require.Len(t, queue.events, 2)
	assert.Equal(t, "backup_restored", queue.events[0].Event)
	assert.Equal(t, "web-1", queue.events[0].DistinctId)
	assert.Equal(t, 2, queue.events[0].Properties["expenses"])
	assert.Equal(t, "/api/v1/backup/restore", queue.events[0].Properties["path"])
	assert.Equal(t, "api_v1_backup_restore", queue.events[1].Event)
}

func TestPosthogEvent_WithoutMiddlewareIsNoop(t *testing.T) {
	r := gin.New()
	r.GET("/ping", func(c *gin.Context) {
		assert.NotPanics(t, func() { middleware.PosthogEvent(c, "ping", nil) })
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
