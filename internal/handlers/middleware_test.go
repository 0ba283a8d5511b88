package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beyondie2/word-quiz/internal/models"
	"github.com/beyondie2/word-quiz/internal/security"
)

func testMiddleware(t *testing.T) (*Middleware, *security.TokenManager) {
	t.Helper()
	tokens := security.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	limiter := security.NewRateLimiter(100, time.Minute)
	return NewMiddleware(tokens, limiter, []string{"http://localhost:5173"}), tokens
}

func signFor(t *testing.T, tokens *security.TokenManager, isAdmin bool) string {
	t.Helper()
	token, err := tokens.GenerateAccessToken(&models.User{
		ID:       1,
		Username: "mina",
		Email:    "mina@example.com",
		IsAdmin:  isAdmin,
	})
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	m, tokens := testMiddleware(t)

	var gotUserID int64
	handler := m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetClaimsFromContext(r.Context()).UserID
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + signFor(t, tokens, false), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	if gotUserID != 1 {
		t.Errorf("claims userID = %d, want 1", gotUserID)
	}
}

func TestRequireAdmin(t *testing.T) {
	m, tokens := testMiddleware(t)

	handler := m.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signFor(t, tokens, false))
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signFor(t, tokens, true))
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", rec.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	limiter := security.NewRateLimiter(2, time.Minute)
	m := NewMiddleware(tokens, limiter, nil)

	handler := m.RateLimit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("throttled status = %d, want 429", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	m, _ := testMiddleware(t)

	handler := m.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Preflight from an allowed origin
	req := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow-origin = %q", got)
	}

	// Disallowed origin gets no CORS headers
	req = httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("allow-origin for disallowed origin = %q, want empty", got)
	}
}
