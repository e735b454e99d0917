// AngelaMos | 2026
// middleware_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc.def", "abc.def"},
		{"bearer  spaced ", "spaced"},
		{"Basic Zm9v", ""},
		{"Bearer", ""},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		if got := ExtractToken(r); got != tt.want {
			t.Errorf("ExtractToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func withUser(r *http.Request, email, role string) *http.Request {
	ctx := context.WithValue(r.Context(), UserIDKey, email)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return r.WithContext(ctx)
}

func TestRequireSession(t *testing.T) {
	active := "ana@example.com"
	h := RequireSession(func() string { return active })(okHandler())

	tests := []struct {
		name   string
		token  string
		active string
		want   int
	}{
		{"matching identity", "ana@example.com", "ana@example.com", http.StatusOK},
		{"switched identity", "ana@example.com", "bob@example.com", http.StatusUnauthorized},
		{"logged out", "ana@example.com", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active = tt.active
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), tt.token, "USER"))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), "a@b.c", "USER"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("user status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), "a@b.c", "ADMIN"))
	if rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", rec.Code)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if seen != "req-123" || rec.Header().Get(RequestIDHeader) != "req-123" {
		t.Errorf("request id = %q / %q", seen, rec.Header().Get(RequestIDHeader))
	}
}

func TestTieredRateLimiterFallsBackWithoutRedis(t *testing.T) {
	tiers := map[string]TierConfig{"free": {RequestsPerMinute: 1, BurstSize: 1}}
	h := TieredRateLimiter(nil, tiers, nil)(okHandler())

	r := withUser(httptest.NewRequest(http.MethodGet, "/", nil), "a@b.c", "USER")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("first call = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second call = %d, want 429", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Tier") != "free" {
		t.Errorf("tier header = %q", rec.Header().Get("X-RateLimit-Tier"))
	}
}

func TestTieredRateLimiterUsesTierFunc(t *testing.T) {
	tiers := map[string]TierConfig{
		"free":       {RequestsPerMinute: 1, BurstSize: 1},
		"pro_annual": {RequestsPerMinute: 60, BurstSize: 5},
	}
	current := "pro_annual"
	h := TieredRateLimiter(nil, tiers, func(*http.Request) string {
		return current
	})(okHandler())

	r := withUser(httptest.NewRequest(http.MethodGet, "/", nil), "upgraded@b.c", "USER")
	r = r.WithContext(context.WithValue(r.Context(), UserTierKey, "free"))

	for i := range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		if rec.Code != http.StatusOK {
			t.Fatalf("call %d = %d, want 200", i+1, rec.Code)
		}
		if got := rec.Header().Get("X-RateLimit-Tier"); got != "pro_annual" {
			t.Errorf("tier header = %q, want pro_annual", got)
		}
	}
}
