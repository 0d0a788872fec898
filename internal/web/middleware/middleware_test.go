package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(5, 60)
	for i := range 5 {
		require.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "request beyond limit should be denied")
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(3, 60)
	for range 3 {
		rl.Allow("10.0.0.1")
	}
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "different client should not be affected")
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(3, 60)

	// Fill up the limit by backdating timestamps
	rl.mu.Lock()
	past := time.Now().Add(-rl.window - time.Second)
	for range 3 {
		rl.requests["10.0.0.1"] = append(rl.requests["10.0.0.1"], past)
	}
	rl.mu.Unlock()

	assert.True(t, rl.Allow("10.0.0.1"), "should allow after old entries expire")
}

func TestRateLimiterPrunesOldEntries(t *testing.T) {
	rl := NewRateLimiter(4, 60)

	rl.mu.Lock()
	old := time.Now().Add(-rl.window - time.Second)
	for range 3 {
		rl.requests["10.0.0.1"] = append(rl.requests["10.0.0.1"], old)
	}
	rl.mu.Unlock()

	// Should prune the 3 old entries and allow new ones
	for i := range 4 {
		require.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed after pruning", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter(5, 60)
	var wg sync.WaitGroup
	allowed := make([]int, 10)

	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ip := fmt.Sprintf("10.0.0.%d", i)
			for range 7 {
				if rl.Allow(ip) {
					allowed[i]++
				}
			}
		}()
	}
	wg.Wait()

	for i, count := range allowed {
		assert.Equal(t, 5, count, "client %d should have exactly 5 allowed requests", i)
	}
}

func TestChainAppliesInOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("first"), tag("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight should not reach the handler")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/romanize", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestAPIKeyAuth(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Chain(handler, APIKeyAuth("secret")).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("X-API-Key", "nope")
		rec := httptest.NewRecorder()
		Chain(handler, APIKeyAuth("secret")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("X-API-Key", "secret")
		rec := httptest.NewRecorder()
		Chain(handler, APIKeyAuth("secret")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unconfigured key refuses everything", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("X-API-Key", "")
		rec := httptest.NewRecorder()
		Chain(handler, APIKeyAuth("")).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.10:54321"
	assert.Equal(t, "192.168.1.10", ClientIP(req))

	req.Header.Set("X-Real-IP", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", ClientIP(req))
}
