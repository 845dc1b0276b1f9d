package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixtyseconds/showcase/pkg/ratelimit"
)

func newLimiter(t *testing.T, cfg ratelimit.Config) *ratelimit.Limiter {
	t.Helper()

	l, err := ratelimit.New(cfg, ratelimit.WithCleanupInterval(0))
	require.NoError(t, err)
	t.Cleanup(l.Close)
	return l
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, cfg := range []ratelimit.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimit.New(cfg)
		assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)
	}
}

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	t.Run("denies once the bucket is empty", func(t *testing.T) {
		t.Parallel()

		l := newLimiter(t, ratelimit.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Hour})

		for i := 0; i < 3; i++ {
			result := l.Allow("k")
			assert.True(t, result.Allowed(), "request %d", i)
		}
		result := l.Allow("k")
		assert.False(t, result.Allowed())
		assert.Positive(t, result.RetryAfter())
	})

	t.Run("buckets are independent per key", func(t *testing.T) {
		t.Parallel()

		l := newLimiter(t, ratelimit.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})

		assert.True(t, l.Allow("a").Allowed())
		assert.False(t, l.Allow("a").Allowed())
		assert.True(t, l.Allow("b").Allowed())
	})

	t.Run("refills over time", func(t *testing.T) {
		t.Parallel()

		l := newLimiter(t, ratelimit.Config{Capacity: 1, RefillRate: 1, RefillInterval: 10 * time.Millisecond})

		require.True(t, l.Allow("k").Allowed())
		require.False(t, l.Allow("k").Allowed())

		time.Sleep(25 * time.Millisecond)
		assert.True(t, l.Allow("k").Allowed())
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	l := newLimiter(t, ratelimit.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	handler := ratelimit.Middleware(l, ratelimit.ByClientIP)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := do("10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	do("10.0.0.1:1234")
	third := do("10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Too many requests"}`, third.Body.String())

	other := do("10.0.0.2:1234")
	assert.Equal(t, http.StatusOK, other.Code)
}
