// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"draftdeck/internal/models"
	"draftdeck/internal/session"
)

func TestSignupLoginMe(t *testing.T) {
	env := newTestEnv(t)

	email := fmt.Sprintf("flow-%s@test.local", uuid.New().String()[:8])
	body := fmt.Sprintf(`{"email":%q,"password":"password123","display_name":"Flow"}`, email)

	rec := httptest.NewRecorder()
	env.Auth.Signup(rec, httptest.NewRequest("POST", "/signup", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: got %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created models.User
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	t.Cleanup(func() { env.Users.Delete(created.ID) })

	if created.Credits != models.InitialCredits {
		t.Errorf("initial credits = %d, want %d", created.Credits, models.InitialCredits)
	}
	if cookieValue(rec, session.CookieName) == "" {
		t.Error("signup did not set a session cookie")
	}

	// Duplicate signup is rejected.
	rec = httptest.NewRecorder()
	env.Auth.Signup(rec, httptest.NewRequest("POST", "/signup", strings.NewReader(body)))
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate signup: got %d, want 409", rec.Code)
	}

	// Wrong password.
	rec = httptest.NewRecorder()
	login := fmt.Sprintf(`{"email":%q,"password":"wrong-password"}`, email)
	env.Auth.Login(rec, httptest.NewRequest("POST", "/login", strings.NewReader(login)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login: got %d, want 401", rec.Code)
	}

	// Correct password.
	rec = httptest.NewRecorder()
	login = fmt.Sprintf(`{"email":%q,"password":"password123"}`, email)
	env.Auth.Login(rec, httptest.NewRequest("POST", "/login", strings.NewReader(login)))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got %d, want 200", rec.Code)
	}

	// Me with a loaded session.
	rec = httptest.NewRecorder()
	req := withSession(httptest.NewRequest("GET", "/api/me", nil), sessionFor(&created))
	env.Auth.Me(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: got %d, want 200", rec.Code)
	}
	var me models.User
	if err := json.NewDecoder(rec.Body).Decode(&me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.ID != created.ID {
		t.Errorf("me returned user %s, want %s", me.ID, created.ID)
	}
}

func TestSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"password123","display_name":"X"}`},
		{"bad email", `{"email":"not-an-email","password":"password123","display_name":"X"}`},
		{"short password", `{"email":"short@test.local","password":"short","display_name":"X"}`},
		{"missing name", `{"email":"noname@test.local","password":"password123"}`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		env.Auth.Signup(rec, httptest.NewRequest("POST", "/signup", strings.NewReader(tc.body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", tc.name, rec.Code)
		}
	}
}

func cookieValue(rec *httptest.ResponseRecorder, name string) string {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
