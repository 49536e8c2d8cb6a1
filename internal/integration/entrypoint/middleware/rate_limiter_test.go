package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestRouter(t *testing.T, maxAttempts int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := NewRateLimiterWithConfig(client, maxAttempts, time.Minute)
	router.Use(limiter.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, server
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Run("blocks after the attempt limit", func(t *testing.T) {
		router, _ := newTestRouter(t, 3)

		for i := 0; i < 3; i++ {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/ping", nil)
			request.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(recorder, request)
			if recorder.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, recorder.Code)
			}
		}

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		request.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(recorder, request)
		if recorder.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429 after the limit, got %d", recorder.Code)
		}
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		router, _ := newTestRouter(t, 1)

		first := httptest.NewRecorder()
		firstRequest := httptest.NewRequest(http.MethodGet, "/ping", nil)
		firstRequest.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(first, firstRequest)

		second := httptest.NewRecorder()
		secondRequest := httptest.NewRequest(http.MethodGet, "/ping", nil)
		secondRequest.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(second, secondRequest)

		if first.Code != http.StatusOK || second.Code != http.StatusOK {
			t.Errorf("expected both clients allowed, got %d and %d", first.Code, second.Code)
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		router, server := newTestRouter(t, 1)

		first := httptest.NewRecorder()
		firstRequest := httptest.NewRequest(http.MethodGet, "/ping", nil)
		firstRequest.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(first, firstRequest)

		server.FastForward(2 * time.Minute)

		second := httptest.NewRecorder()
		secondRequest := httptest.NewRequest(http.MethodGet, "/ping", nil)
		secondRequest.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(second, secondRequest)
		if second.Code != http.StatusOK {
			t.Errorf("expected 200 after the window expired, got %d", second.Code)
		}
	})
}
