package handlers

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/beyondie2/word-quiz/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const ClaimsContextKey ContextKey = "claims"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens         *security.TokenManager
	limiter        *security.RateLimiter
	allowedOrigins []string
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.TokenManager, limiter *security.RateLimiter, allowedOrigins []string) *Middleware {
	return &Middleware{
		tokens:         tokens,
		limiter:        limiter,
		allowedOrigins: allowedOrigins,
	}
}

// bearerToken extracts the token from an Authorization: Bearer header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequireAuth rejects requests without a valid access token and puts the
// verified claims on the request context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respondWithError(w, http.StatusUnauthorized, "authentication required", "", nil)
			return
		}

		claims, err := m.tokens.VerifyAccessToken(token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "invalid or expired token", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin is RequireAuth plus an admin check
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaimsFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			respondWithError(w, http.StatusForbidden, "admin access required", "", nil)
			return
		}
		next(w, r)
	})
}

// RateLimit throttles by client IP. Applied to the auth endpoints.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !m.limiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "too many requests", "", nil)
			return
		}
		next(w, r)
	}
}

// CORS answers preflight requests and sets the allow headers for configured
// origins.
func (m *Middleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && m.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) originAllowed(origin string) bool {
	for _, allowed := range m.allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// clientIP strips the port, falling back to the raw RemoteAddr
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// GetClaimsFromContext retrieves the verified access claims, nil when absent
func GetClaimsFromContext(ctx context.Context) *security.AccessClaims {
	claims, ok := ctx.Value(ClaimsContextKey).(*security.AccessClaims)
	if !ok {
		return nil
	}
	return claims
}
