package httpmiddleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *clock {
	return &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func request(remote string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = remote
	return req
}

func newTestLimiter(cfg RateLimitConfig) (*Limiter, *clock) {
	c := newClock()
	l := NewLimiter(cfg)
	l.now = c.now
	return l, c
}

func TestLimiter_UnderLimit(t *testing.T) {
	l, _ := newTestLimiter(RateLimitConfig{Max: 5, Window: time.Minute})
	h := l.Middleware()(okHandler())

	for i := range 5 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, request("192.168.1.1:12345"))

		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(4-i), w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestLimiter_OverLimit(t *testing.T) {
	l, _ := newTestLimiter(RateLimitConfig{Max: 2, Window: time.Minute})
	h := l.Middleware()(okHandler())

	for range 2 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, request("10.0.0.1:9999"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, request("10.0.0.1:9999"))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, float64(429), body["code"])
	assert.Equal(t, "rate limit exceeded", body["message"])
	assert.Equal(t, "RATE_LIMITED", body["reason"])
}

func TestLimiter_SlidingWindow(t *testing.T) {
	l, c := newTestLimiter(RateLimitConfig{Max: 4, Window: time.Minute})
	h := l.Middleware()(okHandler())
	serve := func() int {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, request("10.0.0.1:1"))
		return w.Code
	}

	for range 4 {
		require.Equal(t, http.StatusOK, serve())
	}
	require.Equal(t, http.StatusTooManyRequests, serve())

	// Halfway through the next window half of the previous budget is
	// still counted.
	c.advance(90 * time.Second)
	assert.Equal(t, http.StatusOK, serve())
	assert.Equal(t, http.StatusOK, serve())
	assert.Equal(t, http.StatusTooManyRequests, serve())

	// Two idle windows reset the bucket.
	c.advance(3 * time.Minute)
	for range 4 {
		assert.Equal(t, http.StatusOK, serve())
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(RateLimitConfig{Max: 1, Window: time.Minute})
	h := l.Middleware()(okHandler())

	w1 := httptest.NewRecorder()
	h.ServeHTTP(w1, request("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, w1.Code)

	w2 := httptest.NewRecorder()
	h.ServeHTTP(w2, request("10.0.0.2:1234"))
	assert.Equal(t, http.StatusOK, w2.Code)

	w3 := httptest.NewRecorder()
	h.ServeHTTP(w3, request("10.0.0.1:5678"))
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
}

func TestLimiter_CustomKeyFunc(t *testing.T) {
	l, _ := newTestLimiter(RateLimitConfig{
		Max:    1,
		Window: time.Minute,
		KeyFunc: func(r *http.Request) string {
			return r.Header.Get("X-User")
		},
	})
	h := l.Middleware()(okHandler())
	serve := func(user string) int {
		req := request("10.0.0.1:1")
		if user != "" {
			req.Header.Set("X-User", user)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve("alice"))
	assert.Equal(t, http.StatusTooManyRequests, serve("alice"))
	assert.Equal(t, http.StatusOK, serve("bob"))
	// An empty key is not limited.
	assert.Equal(t, http.StatusOK, serve(""))
	assert.Equal(t, http.StatusOK, serve(""))
}

func TestLimiter_Evict(t *testing.T) {
	l, c := newTestLimiter(RateLimitConfig{Max: 1, Window: time.Minute})
	_, _, ok := l.take("a")
	require.True(t, ok)

	c.advance(2 * time.Minute)
	l.evict()
	assert.Empty(t, l.windows)
}

func TestNewLimiter_NonPositiveWindow(t *testing.T) {
	for _, window := range []time.Duration{0, -time.Second} {
		l, c := newTestLimiter(RateLimitConfig{Max: 1, Window: window})
		assert.Equal(t, DefaultWindow, l.cfg.Window)

		_, _, ok := l.take("a")
		require.True(t, ok)
		_, _, ok = l.take("a")
		assert.False(t, ok)

		c.advance(2 * DefaultWindow)
		_, _, ok = l.take("a")
		assert.True(t, ok)
	}
}

func TestLimiter_Allow(t *testing.T) {
	l, c := newTestLimiter(RateLimitConfig{Max: 2, Window: time.Minute})
	c.advance(15 * time.Second)

	for range 2 {
		_, ok := l.Allow("user-1")
		require.True(t, ok)
	}
	retryAfter, ok := l.Allow("user-1")
	assert.False(t, ok)
	assert.Equal(t, 45*time.Second, retryAfter)

	_, ok = l.Allow("user-2")
	assert.True(t, ok, "keys have separate budgets")
}

func TestClientIP(t *testing.T) {
	req := request("192.168.1.1:4444")
	assert.Equal(t, "192.168.1.1", ClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.50, 70.41.3.18")
	assert.Equal(t, "203.0.113.50", ClientIP(req))
}
