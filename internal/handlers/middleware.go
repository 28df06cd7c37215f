package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"flashlearn/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const UserIDContextKey ContextKey = "userID"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokenSecret string
	limiter     *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokenSecret string, limiter *security.RateLimiter) *Middleware {
	return &Middleware{
		tokenSecret: tokenSecret,
		limiter:     limiter,
	}
}

// RequireUser is middleware that requires a valid bearer token.
// The token subject becomes the caller's user id for the request.
func (m *Middleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := security.ExtractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Authorization required", "", nil)
			return
		}

		userID, err := security.ParseToken(m.tokenSecret, tokenString)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid token", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit throttles a handler per authenticated caller, falling back to
// the client IP when the request carries no identity yet.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := security.GetClientIP(r)
		if userID := UserIDFromContext(r.Context()); userID > 0 {
			key = "user:" + strconv.FormatInt(userID, 10)
		}
		if !m.limiter.Allow(key) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests with a per-request id
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		next.ServeHTTP(w, r)

		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// UserIDFromContext retrieves the authenticated user id, 0 if absent
func UserIDFromContext(ctx context.Context) int64 {
	userID, ok := ctx.Value(UserIDContextKey).(int64)
	if !ok {
		return 0
	}
	return userID
}
