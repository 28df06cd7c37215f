package security

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a token bucket limiter keyed by caller. Study endpoints
// use it to absorb client retry storms without dropping legitimate traffic.
type RateLimiter struct {
	callers map[string]*callerBucket
	mu      sync.RWMutex
	rate    int           // requests per window
	window  time.Duration // time window
}

type callerBucket struct {
	tokens     int
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a new rate limiter
// rate: number of requests allowed per window
// window: time window for rate limiting
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		callers: make(map[string]*callerBucket),
		rate:    rate,
		window:  window,
	}
	go rl.cleanupCallers()
	return rl
}

// Allow checks if a request from a caller should be allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	b, exists := rl.callers[key]
	if !exists {
		b = &callerBucket{
			tokens:     rl.rate,
			lastRefill: time.Now(),
		}
		rl.callers[key] = b
	}
	rl.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.Sub(b.lastRefill) >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// cleanupCallers removes stale buckets to prevent memory leaks
func (rl *RateLimiter) cleanupCallers() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, b := range rl.callers {
			b.mu.Lock()
			if now.Sub(b.lastRefill) > rl.window*2 {
				delete(rl.callers, key)
			}
			b.mu.Unlock()
		}
		rl.mu.Unlock()
	}
}

// GetClientIP extracts the client IP from the request
func GetClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (when behind proxy)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	// Check X-Real-IP header
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return r.RemoteAddr
}
