// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"draftdeck/internal/middleware"
	"draftdeck/internal/models"
	"draftdeck/internal/store"
	"draftdeck/internal/style"
)

// Style serves the style profile page data and the explicit
// regeneration action.
type Style struct {
	profileRebuilder
}

// NewStyle creates the style handler group.
func NewStyle(uploads *store.UploadStore, onboardings *store.OnboardingStore, profiles *store.ProfileStore, backend style.TextGenerator) *Style {
	return &Style{
		profileRebuilder: profileRebuilder{
			uploads:     uploads,
			onboardings: onboardings,
			profiles:    profiles,
			backend:     backend,
		},
	}
}

// profileResponse is the style page payload: the profile plus the
// derived radar-chart scores.
type profileResponse struct {
	Profile  *models.StyleProfile `json:"profile"`
	Scores   []style.Score        `json:"scores"`
	Degraded bool                 `json:"degraded,omitempty"`
}

// Get handles GET /api/style, returning the active profile with scores
// and fun facts.
func (h *Style) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	profile, err := h.profiles.Active(sess.UserID)
	if err != nil {
		slog.Error("active profile", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "no style profile yet; add a writing sample or finish onboarding")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Profile: profile,
		Scores:  style.Scores(profile.Summary),
	})
}

// Regenerate handles POST /api/style/regenerate. Re-analyzes the full
// corpus and activates a new profile version. Free of charge.
func (h *Style) Regenerate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	profile, degraded, err := h.rebuild(r.Context(), sess.UserID)
	if errors.Is(err, errNoCorpus) {
		writeError(w, http.StatusBadRequest, "add a writing sample before regenerating your style profile")
		return
	}
	if err != nil {
		slog.Error("regenerate profile", "error", err)
		writeError(w, http.StatusBadGateway, "style analysis is unavailable right now")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Profile:  profile,
		Scores:   style.Scores(profile.Summary),
		Degraded: degraded,
	})
}

// History handles GET /api/style/history, listing all profile versions.
func (h *Style) History(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	profiles, err := h.profiles.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("list profiles", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if profiles == nil {
		profiles = []*models.StyleProfile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}
