// Package ratelimit is an in-memory token bucket limiter with HTTP
// middleware, used to throttle the contact-form endpoint per client IP.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidConfig indicates that the provided configuration is invalid.
var ErrInvalidConfig = errors.New("invalid rate limit configuration")

// Config defines the token bucket shape.
type Config struct {
	Capacity       int           // Maximum tokens the bucket can hold (burst limit)
	RefillRate     int           // Tokens added per refill interval
	RefillInterval time.Duration // How often tokens are added
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of one rate limit check.
type Result struct {
	Limit     int       // Bucket capacity
	Remaining int       // Tokens left after this check, negative when denied
	ResetAt   time.Time // Next refill time
}

// Allowed reports whether the request may proceed.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying, 0 when allowed.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter holds one token bucket per key.
type Limiter struct {
	cfg Config

	mu      sync.Mutex
	buckets map[string]*bucket

	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithCleanupInterval sets how often stale buckets are evicted. Zero
// disables the cleanup goroutine.
func WithCleanupInterval(d time.Duration) Option {
	return func(l *Limiter) {
		l.cleanupInterval = d
	}
}

// New creates a Limiter for the given bucket shape.
func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{
		cfg:             cfg,
		buckets:         make(map[string]*bucket),
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.cleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l, nil
}

// Allow consumes one token from the key's bucket. Remaining is -1 when the
// bucket is empty and the request must be denied.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets[key] = b
	}
	b.lastAccess = now

	// Cap the interval count so a long-idle bucket cannot overflow.
	elapsed := now.Sub(b.lastRefill)
	maxIntervals := int64(l.cfg.Capacity/l.cfg.RefillRate + 1)
	intervals := min(int64(elapsed/l.cfg.RefillInterval), maxIntervals)
	if intervals > 0 {
		b.tokens = min(l.cfg.Capacity, b.tokens+int(intervals)*l.cfg.RefillRate)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.cfg.RefillInterval)
		if b.tokens == l.cfg.Capacity {
			b.lastRefill = now
		}
	}

	resetAt := b.lastRefill.Add(l.cfg.RefillInterval)
	if b.tokens <= 0 {
		return Result{Limit: l.cfg.Capacity, Remaining: -1, ResetAt: resetAt}
	}
	b.tokens--
	return Result{Limit: l.cfg.Capacity, Remaining: b.tokens, ResetAt: resetAt}
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictStale()
		}
	}
}

func (l *Limiter) evictStale() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-2 * l.cleanupInterval)
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
