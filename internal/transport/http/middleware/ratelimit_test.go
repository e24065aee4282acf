package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitBlocksOverBudget(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	get := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if get() != http.StatusOK || get() != http.StatusOK {
		t.Fatal("expected first two requests to pass")
	}
	if get() != http.StatusTooManyRequests {
		t.Fatal("expected third request to be rate limited")
	}
}

func TestRateLimitKeysByClient(t *testing.T) {
	handler := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	get := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if get("10.0.0.1:4000") != http.StatusOK {
		t.Fatal("expected first client to pass")
	}
	if get("10.0.0.2:4000") != http.StatusOK {
		t.Fatal("expected second client to have its own budget")
	}
	if get("10.0.0.1:4001") != http.StatusTooManyRequests {
		t.Fatal("expected first client to be exhausted")
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected forwarded address, got %q", got)
	}
}
