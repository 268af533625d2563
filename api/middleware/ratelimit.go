// ABOUTME: Rate limiting middleware for API and dashboard endpoints
// ABOUTME: Implements per-IP token buckets that forget idle clients

package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"pakgov-intel/pkg/featureflags"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client key. A bucket holds
// limit tokens and refills one token every window/limit.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *gocache.Cache
	limit    int
	window   time.Duration
}

// NewRateLimiter creates a new rate limiter allowing limit requests per window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	// Idle buckets are full again after one window, so they can be dropped
	idle := 2 * window
	return &RateLimiter{
		limiters: gocache.New(idle, idle),
		limit:    limit,
		window:   window,
	}
}

// Allow checks if a request from the given key is allowed
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiterFor(key).Allow()
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.limiters.Get(key); ok {
		lim := v.(*rate.Limiter)
		rl.limiters.SetDefault(key, lim)
		return lim
	}

	lim := rate.NewLimiter(rate.Every(rl.window/time.Duration(rl.limit)), rl.limit)
	rl.limiters.SetDefault(key, lim)
	return lim
}

// retryAfterSeconds is the time until one token is available again
func (rl *RateLimiter) retryAfterSeconds() int {
	per := rl.window / time.Duration(rl.limit)
	secs := int(math.Ceil(per.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Clients returns the number of tracked client buckets
func (rl *RateLimiter) Clients() int {
	return rl.limiters.ItemCount()
}

// extractIP gets the client IP from the request
func extractIP(r *http.Request) string {
	// The first X-Forwarded-For entry is the originating client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits.
// When flags is non-nil the limiter only applies while RateLimitEnabled is on.
func RateLimitMiddleware(limiter *RateLimiter, flags featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if flags != nil && !flags.IsEnabled(r.Context(), featureflags.RateLimitEnabled) {
				next.ServeHTTP(w, r)
				return
			}

			ip := extractIP(r)

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.limit))
			w.Header().Set("X-RateLimit-Window", limiter.window.String())

			if !limiter.Allow(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", limiter.retryAfterSeconds()))
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
