package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"mbox/internal/api/middleware"
)

type memoryCounter map[string]int64

func (m memoryCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	m[key]++
	return redis.NewIntResult(m[key], nil)
}

func (m memoryCounter) Expire(_ context.Context, _ string, _ time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

func newLimitedRouter(t *testing.T, trustedProxies []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), trustedProxies)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	fixed := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	limited := router.Group("/api", middleware.RateLimitMiddleware(memoryCounter{}, 1, func() time.Time { return fixed }))
	limited.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func pingFrom(router *gin.Engine, forwardedFor string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", forwardedFor)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRouter_IgnoresForwardedForByDefault(t *testing.T) {
	router := newLimitedRouter(t, nil)

	if code := pingFrom(router, "1.1.1.1"); code != http.StatusOK {
		t.Fatalf("first request: expected 200 got %d", code)
	}
	if code := pingFrom(router, "2.2.2.2"); code != http.StatusTooManyRequests {
		t.Fatalf("rotated X-Forwarded-For must not reset the limit, got %d", code)
	}
}

func TestRouter_HonorsForwardedForFromTrustedProxy(t *testing.T) {
	router := newLimitedRouter(t, []string{"10.0.0.1"})

	if code := pingFrom(router, "1.1.1.1"); code != http.StatusOK {
		t.Fatalf("first client: expected 200 got %d", code)
	}
	if code := pingFrom(router, "2.2.2.2"); code != http.StatusOK {
		t.Fatalf("second client behind trusted proxy: expected 200 got %d", code)
	}
	if code := pingFrom(router, "1.1.1.1"); code != http.StatusTooManyRequests {
		t.Fatalf("repeat client: expected 429 got %d", code)
	}
}

func TestRouter_RejectsInvalidTrustedProxy(t *testing.T) {
	if _, err := NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), []string{"not-an-ip"}); err == nil {
		t.Fatalf("expected error for invalid proxy")
	}
}
