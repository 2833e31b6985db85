// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/middleware"
	"github.com/tomtom215/marinestats/internal/models"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	rec := env.do(http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	health := decodeBody[models.HealthStatus](t, rec)
	if health.Status != "healthy" || !health.DatabaseConnected || !health.TableauConfigured {
		t.Errorf("health = %+v", health)
	}
	if health.Backend != "fake" {
		t.Errorf("backend = %q", health.Backend)
	}

	env.store.pingErr = errStoreDown
	health = decodeBody[models.HealthStatus](t, env.do(http.MethodGet, "/api/health", ""))
	if health.Status != "degraded" || health.DatabaseConnected {
		t.Errorf("health with store down = %+v", health)
	}
}

func TestHealthProbes(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)

	if rec := env.do(http.MethodGet, "/api/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("live = %d", rec.Code)
	}
	if rec := env.do(http.MethodGet, "/api/health/ready", ""); rec.Code != http.StatusOK {
		t.Errorf("ready = %d", rec.Code)
	}

	env.store.pingErr = errStoreDown
	if rec := env.do(http.MethodGet, "/api/health/ready", ""); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready with store down = %d", rec.Code)
	}
	if rec := env.do(http.MethodGet, "/api/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("live with store down = %d", rec.Code)
	}
}

func TestRouterHeaders(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/abnormalities", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "req-42" {
		t.Errorf("request id = %q", got)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestRouterMethodsAndUnknownRoutes(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)

	if rec := env.do(http.MethodGet, "/api/tableau/auth", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET auth = %d, want 405", rec.Code)
	}
	if rec := env.do(http.MethodGet, "/api/whales", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route = %d, want 404", rec.Code)
	}
	if rec := env.do(http.MethodGet, "/metrics", ""); rec.Code != http.StatusOK {
		t.Errorf("metrics = %d", rec.Code)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.server = NewRouter(env.handler, NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{
		CORSOrigins:       []string{"https://dashboard.example.org"},
		RateLimitDisabled: true,
	}))).Setup()

	req := httptest.NewRequest(http.MethodOptions, "/api/fish/stats", nil)
	req.Header.Set("Origin", "https://dashboard.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.example.org" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouterRateLimit(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.server = NewRouter(env.handler, NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})).Setup()

	var last *httptest.ResponseRecorder
	for range 3 {
		last = env.do(http.MethodGet, "/api/abnormalities", "")
	}
	assertError(t, last, http.StatusTooManyRequests, "Too many requests")

	// health checks sit outside the limited group
	if rec := env.do(http.MethodGet, "/api/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("live after limit = %d", rec.Code)
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	cfg := ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{RateLimitReqs: 7})
	if cfg.RateLimitRequests != 7 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("config = %+v", cfg)
	}
	if got := ChiMiddlewareConfigFromSecurity(nil); got.RateLimitRequests != 100 {
		t.Errorf("defaults = %+v", got)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	got := sanitizeLogValue("line1\nline2\t\x7f")
	if strings.ContainsAny(got, "\n\t\x7f") {
		t.Errorf("control characters survived: %q", got)
	}
	if got != `line1\x0aline2\x09\x7f` {
		t.Errorf("got %q", got)
	}
}
