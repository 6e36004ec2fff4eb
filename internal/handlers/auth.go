// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"draftdeck/internal/middleware"
	"draftdeck/internal/session"
	"draftdeck/internal/store"
)

// minPasswordLength is the floor for new account passwords.
const minPasswordLength = 8

// Auth handles signup, login, logout and the current-user endpoint.
type Auth struct {
	users    *store.UserStore
	sessions *session.Store
}

// NewAuth creates the auth handler group.
func NewAuth(users *store.UserStore, sessions *session.Store) *Auth {
	return &Auth{users: users, sessions: sessions}
}

// Signup handles POST /signup. New accounts get the initial credit
// grant and an immediate session.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "valid email required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}
	if req.DisplayName == "" {
		writeError(w, http.StatusBadRequest, "display name required")
		return
	}

	existing, err := h.users.FindByEmail(req.Email)
	if err != nil {
		slog.Error("signup lookup", "error", err)
		writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "an account with this email already exists")
		return
	}

	user, err := h.users.Create(req.Email, req.Password, req.DisplayName)
	if err != nil {
		slog.Error("signup create", "error", err)
		writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, &session.Data{
		UserID:         user.ID,
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		OnboardingDone: user.OnboardingCompleted,
	}); err != nil {
		slog.Error("signup session", "error", err)
		writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		slog.Error("login lookup", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	// Same answer whether the account is missing or the password is wrong.
	if user == nil || !h.users.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, &session.Data{
		UserID:         user.ID,
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		OnboardingDone: user.OnboardingCompleted,
	}); err != nil {
		slog.Error("login session", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /logout.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("logout", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /me, returning the authenticated user's account.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := h.users.FindByID(sess.UserID)
	if err != nil {
		slog.Error("me lookup", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if user == nil {
		// Session outlived the account.
		h.sessions.Destroy(r.Context(), w, r)
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
