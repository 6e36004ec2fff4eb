// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"draftdeck/internal/generate"
	"draftdeck/internal/middleware"
	"draftdeck/internal/models"
	"draftdeck/internal/schedule"
	"draftdeck/internal/store"
)

// maxAutoPopulate caps how many drafts one auto-populate call creates.
const maxAutoPopulate = 7

// Calendar serves the month view and the auto-populate action.
type Calendar struct {
	users      *store.UserStore
	contents   *store.ContentStore
	profiles   *store.ProfileStore
	guidelines *store.GuidelineStore
	generator  *generate.Service
}

// NewCalendar creates the calendar handler group.
func NewCalendar(users *store.UserStore, contents *store.ContentStore, profiles *store.ProfileStore, guidelines *store.GuidelineStore, generator *generate.Service) *Calendar {
	return &Calendar{
		users:      users,
		contents:   contents,
		profiles:   profiles,
		guidelines: guidelines,
		generator:  generator,
	}
}

// dayCell is one calendar day in the month view.
type dayCell struct {
	Items   []*models.ContentItem `json:"items"`
	Blogs   int                   `json:"blogs"`
	Socials int                   `json:"socials"`
}

// Month handles GET /api/calendar?month=YYYY-MM, defaulting to the
// current month in the user's timezone.
func (h *Calendar) Month(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := h.users.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("load user", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	loc := user.Location()

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		monthStr = time.Now().In(loc).Format("2006-01")
	}
	year, month, err := schedule.ParseMonth(monthStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}

	start, end := schedule.MonthRange(year, month, loc)
	items, err := h.contents.ListScheduledRange(sess.UserID, start, end)
	if err != nil {
		slog.Error("list scheduled", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	days := make(map[string]*dayCell)
	for date, bucket := range schedule.BucketByLocalDate(items, loc) {
		cell := &dayCell{Items: bucket}
		for _, item := range bucket {
			if item.Type == models.ContentTypeBlog {
				cell.Blogs++
			} else {
				cell.Socials++
			}
		}
		days[date] = cell
	}

	prev, next := schedule.PrevNext(year, month)
	writeJSON(w, http.StatusOK, map[string]any{
		"month": monthStr,
		"prev":  prev,
		"next":  next,
		"days":  days,
	})
}

// AutoPopulate handles POST /api/calendar/auto-populate: generates a
// draft for every open day in the month that matches the weekly posting
// schedule, up to seven, paid once with a single combined debit.
func (h *Calendar) AutoPopulate(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Month string `json:"month"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.users.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("load user", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	loc := user.Location()

	year, month, err := schedule.ParseMonth(req.Month)
	if err != nil {
		writeError(w, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}

	profile, err := h.profiles.Active(sess.UserID)
	if err != nil {
		slog.Error("active profile", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if profile == nil {
		writeError(w, http.StatusConflict, "no style profile yet; add a writing sample first")
		return
	}

	schedules, err := h.guidelines.ListSchedules(sess.UserID)
	if err != nil {
		slog.Error("list schedules", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if len(schedules) == 0 {
		writeError(w, http.StatusBadRequest, "set up your weekly posting schedule first")
		return
	}

	dates := h.openDates(sess.UserID, schedules, year, month, loc)
	if dates == nil {
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if len(dates) > maxAutoPopulate {
		dates = dates[:maxAutoPopulate]
	}
	if len(dates) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"items": []*models.ContentItem{}})
		return
	}

	totalCost := generate.CostSocial * len(dates)
	if !user.CanAfford(totalCost) {
		writeError(w, http.StatusPaymentRequired,
			fmt.Sprintf("insufficient credits: %d drafts cost %d, you have %d", len(dates), totalCost, user.Credits))
		return
	}

	pillars, err := h.pillarsByID(sess.UserID)
	if err != nil {
		slog.Error("list pillars", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	byWeekday := make(map[time.Weekday]*models.GuidelineSchedule, len(schedules))
	for _, s := range schedules {
		byWeekday[schedule.Weekday(s.DayOfWeek)] = s
	}

	drafts := make([]store.ScheduledDraft, 0, len(dates))
	for _, date := range dates {
		topic := topicFor(byWeekday[date.In(loc).Weekday()], pillars)
		draft, err := h.generator.Generate(r.Context(), profile.Summary, models.ContentTypeSocial, topic)
		if err != nil {
			slog.Error("auto-populate generate", "topic", topic, "error", err)
			writeError(w, http.StatusBadGateway, "generation is unavailable right now; you were not charged")
			return
		}
		drafts = append(drafts, store.ScheduledDraft{
			Type:         models.ContentTypeSocial,
			Topic:        topic,
			ScheduledFor: date,
			Draft:        store.Draft{BodyMD: draft.BodyMD, Meta: draft.Meta, ImageSearchTerm: draft.ImageSearchTerm},
		})
	}

	items, err := h.contents.CreateScheduledBatch(sess.UserID, drafts, totalCost, "calendar auto-populate "+req.Month)
	if err != nil {
		slog.Error("auto-populate store", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"items": items})
}

// openDates lists the schedule-matching days of the month that do not
// already hold a scheduled item. Returns nil on store failure.
func (h *Calendar) openDates(userID uuid.UUID, schedules []*models.GuidelineSchedule, year int, month time.Month, loc *time.Location) []time.Time {
	candidates := schedule.MatchingDates(schedules, year, month, loc, time.Now())

	start, end := schedule.MonthRange(year, month, loc)
	existing, err := h.contents.ListScheduledRange(userID, start, end)
	if err != nil {
		slog.Error("list scheduled", "error", err)
		return nil
	}
	occupied := schedule.BucketByLocalDate(existing, loc)

	open := make([]time.Time, 0, len(candidates))
	for _, date := range candidates {
		if _, taken := occupied[date.In(loc).Format("2006-01-02")]; taken {
			continue
		}
		open = append(open, date)
	}
	return open
}

func (h *Calendar) pillarsByID(userID uuid.UUID) (map[string]*models.GuidelinePillar, error) {
	pillars, err := h.guidelines.ListPillars(userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.GuidelinePillar, len(pillars))
	for _, p := range pillars {
		byID[p.ID.String()] = p
	}
	return byID, nil
}

// topicFor picks the draft topic for a day: the assigned pillar's
// title, the slot's notes, or a generic fallback.
func topicFor(sched *models.GuidelineSchedule, pillars map[string]*models.GuidelinePillar) string {
	if sched != nil {
		if sched.PillarID != nil {
			if p, ok := pillars[sched.PillarID.String()]; ok && p.Title != "" {
				return p.Title
			}
		}
		if sched.Notes != "" {
			return sched.Notes
		}
	}
	return "An update for my audience this week"
}
