// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"draftdeck/internal/middleware"
	"draftdeck/internal/models"
	"draftdeck/internal/session"
	"draftdeck/internal/store"
	"draftdeck/internal/style"
)

// Onboarding handles the intake form. The first save marks the account
// onboarded and, when the user has no uploads yet, seeds an initial
// style profile from the answers themselves.
type Onboarding struct {
	profileRebuilder
	users    *store.UserStore
	sessions *session.Store
}

// NewOnboarding creates the onboarding handler group.
func NewOnboarding(users *store.UserStore, onboardings *store.OnboardingStore, uploads *store.UploadStore, profiles *store.ProfileStore, backend style.TextGenerator, sessions *session.Store) *Onboarding {
	return &Onboarding{
		profileRebuilder: profileRebuilder{
			uploads:     uploads,
			onboardings: onboardings,
			profiles:    profiles,
			backend:     backend,
		},
		users:    users,
		sessions: sessions,
	}
}

// Get handles GET /api/onboarding.
func (h *Onboarding) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	onboarding, err := h.onboardings.FindByUser(sess.UserID)
	if err != nil {
		slog.Error("onboarding lookup", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if onboarding == nil {
		writeError(w, http.StatusNotFound, "onboarding not completed yet")
		return
	}
	writeJSON(w, http.StatusOK, onboarding)
}

// Save handles PUT /api/onboarding. Answers can be revised at any time;
// only the first save flips the onboarded flag and seeds a profile.
func (h *Onboarding) Save(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Industry        string `json:"industry"`
		Goals           string `json:"goals"`
		StyleKeywords   string `json:"style_keywords"`
		TopicalKeywords string `json:"topical_keywords"`
		Bio             string `json:"bio"`
		StyleSelfDesc   string `json:"style_self_desc"`
		Timezone        string `json:"timezone"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Industry) == "" {
		writeError(w, http.StatusBadRequest, "industry required")
		return
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			writeError(w, http.StatusBadRequest, "invalid timezone")
			return
		}
		if err := h.users.UpdateTimezone(sess.UserID, req.Timezone); err != nil {
			slog.Error("onboarding timezone", "error", err)
			writeError(w, http.StatusInternalServerError, "save failed")
			return
		}
	}

	saved, err := h.onboardings.Upsert(&models.Onboarding{
		UserID:          sess.UserID,
		Industry:        req.Industry,
		Goals:           req.Goals,
		StyleKeywords:   req.StyleKeywords,
		TopicalKeywords: req.TopicalKeywords,
		Bio:             req.Bio,
		StyleSelfDesc:   req.StyleSelfDesc,
	})
	if err != nil {
		slog.Error("onboarding save", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	if !sess.OnboardingDone {
		if err := h.users.MarkOnboardingCompleted(sess.UserID); err != nil {
			slog.Error("onboarding complete", "error", err)
			writeError(w, http.StatusInternalServerError, "save failed")
			return
		}
		sess.OnboardingDone = true
		if err := h.sessions.Update(r.Context(), r, sess); err != nil {
			slog.Error("onboarding session", "error", err)
		}
		h.seedInitialProfile(r, saved)
	}

	writeJSON(w, http.StatusOK, saved)
}

// seedInitialProfile gives first-time users a profile to generate with
// before their first upload. Any failure is logged and swallowed; the
// intake save must not fail because the AI backend is down.
func (h *Onboarding) seedInitialProfile(r *http.Request, onboarding *models.Onboarding) {
	existing, err := h.profiles.Active(onboarding.UserID)
	if err != nil || existing != nil {
		return
	}

	if _, _, err := h.seed(r.Context(), onboarding.UserID, onboarding); err != nil && !errors.Is(err, errNoCorpus) {
		slog.Warn("seed profile", "user", onboarding.UserID, "error", err)
	}
}
