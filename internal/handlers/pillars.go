// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"draftdeck/internal/middleware"
	"draftdeck/internal/models"
	"draftdeck/internal/store"
)

// Pillars handles content pillars and the weekly posting schedule that
// feeds calendar auto-population.
type Pillars struct {
	guidelines *store.GuidelineStore
}

// NewPillars creates the pillars handler group.
func NewPillars(guidelines *store.GuidelineStore) *Pillars {
	return &Pillars{guidelines: guidelines}
}

// List handles GET /api/pillars.
func (h *Pillars) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	pillars, err := h.guidelines.ListPillars(sess.UserID)
	if err != nil {
		slog.Error("list pillars", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if pillars == nil {
		pillars = []*models.GuidelinePillar{}
	}
	writeJSON(w, http.StatusOK, pillars)
}

// Create handles POST /api/pillars.
func (h *Pillars) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Keywords    string `json:"keywords"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title required")
		return
	}

	pillar, err := h.guidelines.CreatePillar(&models.GuidelinePillar{
		UserID:      sess.UserID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Keywords:    req.Keywords,
	})
	if err != nil {
		slog.Error("create pillar", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	writeJSON(w, http.StatusCreated, pillar)
}

// Update handles PUT /api/pillars/{id}.
func (h *Pillars) Update(w http.ResponseWriter, r *http.Request) {
	pillar, ok := h.ownedPillar(w, r)
	if !ok {
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Keywords    string `json:"keywords"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title required")
		return
	}

	if err := h.guidelines.UpdatePillar(pillar.ID, strings.TrimSpace(req.Title), req.Description, req.Keywords); err != nil {
		slog.Error("update pillar", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	pillar.Title = strings.TrimSpace(req.Title)
	pillar.Description = req.Description
	pillar.Keywords = req.Keywords
	writeJSON(w, http.StatusOK, pillar)
}

// Delete handles DELETE /api/pillars/{id}.
func (h *Pillars) Delete(w http.ResponseWriter, r *http.Request) {
	pillar, ok := h.ownedPillar(w, r)
	if !ok {
		return
	}

	if err := h.guidelines.DeletePillar(pillar.ID); err != nil {
		slog.Error("delete pillar", "error", err)
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// scheduleSlot is one weekday entry in the posting schedule payload.
type scheduleSlot struct {
	DayOfWeek int        `json:"day_of_week"` // 0=Monday .. 6=Sunday
	PillarID  *uuid.UUID `json:"pillar_id,omitempty"`
	Notes     string     `json:"notes"`
}

// GetSchedule handles GET /api/schedule.
func (h *Pillars) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	schedules, err := h.guidelines.ListSchedules(sess.UserID)
	if err != nil {
		slog.Error("list schedules", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if schedules == nil {
		schedules = []*models.GuidelineSchedule{}
	}
	writeJSON(w, http.StatusOK, schedules)
}

// PutSchedule handles PUT /api/schedule, replacing the whole weekly
// table: listed weekdays are upserted, the rest are cleared.
func (h *Pillars) PutSchedule(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Slots []scheduleSlot `json:"slots"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	seen := make(map[int]bool, len(req.Slots))
	for _, slot := range req.Slots {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			writeError(w, http.StatusBadRequest, "day_of_week must be 0 (Monday) through 6 (Sunday)")
			return
		}
		if seen[slot.DayOfWeek] {
			writeError(w, http.StatusBadRequest, "duplicate day_of_week")
			return
		}
		seen[slot.DayOfWeek] = true

		if slot.PillarID != nil {
			pillar, err := h.guidelines.FindPillar(*slot.PillarID)
			if err != nil {
				slog.Error("find pillar", "error", err)
				writeError(w, http.StatusInternalServerError, "lookup failed")
				return
			}
			if pillar == nil || pillar.UserID != sess.UserID {
				writeError(w, http.StatusBadRequest, "unknown pillar")
				return
			}
		}
	}

	for _, slot := range req.Slots {
		if _, err := h.guidelines.UpsertSchedule(sess.UserID, slot.DayOfWeek, slot.PillarID, slot.Notes); err != nil {
			slog.Error("upsert schedule", "error", err)
			writeError(w, http.StatusInternalServerError, "save failed")
			return
		}
	}
	for day := 0; day < 7; day++ {
		if seen[day] {
			continue
		}
		if err := h.guidelines.DeleteSchedule(sess.UserID, day); err != nil {
			slog.Error("delete schedule", "error", err)
			writeError(w, http.StatusInternalServerError, "save failed")
			return
		}
	}

	h.GetSchedule(w, r)
}

func (h *Pillars) ownedPillar(w http.ResponseWriter, r *http.Request) (*models.GuidelinePillar, bool) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}

	pillar, err := h.guidelines.FindPillar(id)
	if err != nil {
		slog.Error("find pillar", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return nil, false
	}
	if pillar == nil || pillar.UserID != sess.UserID {
		writeError(w, http.StatusNotFound, "pillar not found")
		return nil, false
	}
	return pillar, true
}
