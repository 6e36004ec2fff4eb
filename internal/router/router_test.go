// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"draftdeck/internal/middleware"
	"draftdeck/internal/session"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	limiter := middleware.NewRateLimiter(1000, time.Minute)
	t.Cleanup(limiter.Stop)

	// The session store's Valkey client is never touched for requests
	// without a session cookie.
	return New(session.NewStore(nil, false), limiter, Handlers{})
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	testRouter(t).ServeHTTP(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestAPIRequiresAuth(t *testing.T) {
	paths := []string{"/api/me", "/api/uploads/", "/api/style/", "/api/credits/", "/api/content/"}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", path, nil)

		testRouter(t).ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without session: got %d, want 401", path, w.Code)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/definitely-not-a-route/nested", nil)

	testRouter(t).ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}
