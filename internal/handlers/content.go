// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"draftdeck/internal/generate"
	"draftdeck/internal/images"
	"draftdeck/internal/markdown"
	"draftdeck/internal/middleware"
	"draftdeck/internal/models"
	"draftdeck/internal/schedule"
	"draftdeck/internal/store"
)

// Content handles draft generation, listing, versioning, guided
// improvement, topic changes and the HTML preview.
type Content struct {
	users     *store.UserStore
	contents  *store.ContentStore
	profiles  *store.ProfileStore
	generator *generate.Service
	images    *images.Service
}

// NewContent creates the content handler group.
func NewContent(users *store.UserStore, contents *store.ContentStore, profiles *store.ProfileStore, generator *generate.Service, imgSvc *images.Service) *Content {
	return &Content{
		users:     users,
		contents:  contents,
		profiles:  profiles,
		generator: generator,
		images:    imgSvc,
	}
}

// Generate handles POST /api/content/generate. The balance is checked
// before the backend is called; the version insert and the debit land
// in one transaction after generation succeeds.
func (h *Content) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type          models.ContentType `json:"type"`
		Topic         string             `json:"topic"`
		ScheduledDate string             `json:"scheduled_date"` // optional YYYY-MM-DD
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if !models.ValidContentType(req.Type) {
		writeError(w, http.StatusBadRequest, "type must be \"blog\" or \"social\"")
		return
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "topic required")
		return
	}

	user, profile, ok := h.userAndProfile(w, r)
	if !ok {
		return
	}

	cost := generate.CostFor(req.Type)
	if !user.CanAfford(cost) {
		writeError(w, http.StatusPaymentRequired,
			fmt.Sprintf("insufficient credits: this draft costs %d, you have %d", cost, user.Credits))
		return
	}

	var scheduledFor *time.Time
	if req.ScheduledDate != "" {
		t, err := schedule.LocalMidnight(req.ScheduledDate, user.Location())
		if err != nil {
			writeError(w, http.StatusBadRequest, "scheduled_date must be YYYY-MM-DD")
			return
		}
		scheduledFor = &t
	}

	draft, err := h.generator.Generate(r.Context(), profile.Summary, req.Type, req.Topic)
	if err != nil {
		slog.Error("generate draft", "type", req.Type, "error", err)
		writeError(w, http.StatusBadGateway, "generation is unavailable right now; you were not charged")
		return
	}

	item, err := h.contents.CreateItem(&models.ContentItem{
		UserID:       user.ID,
		Type:         req.Type,
		Topic:        req.Topic,
		ScheduledFor: scheduledFor,
	})
	if err != nil {
		slog.Error("create content item", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	version, entry, err := h.contents.CreateVersionAndDebit(
		item.ID, user.ID,
		store.Draft{BodyMD: draft.BodyMD, Meta: draft.Meta, ImageSearchTerm: draft.ImageSearchTerm},
		models.KindGeneration, cost, fmt.Sprintf("%s draft: %s", req.Type, req.Topic),
	)
	if err != nil {
		slog.Error("store draft", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"item":    item,
		"version": version,
		"balance": entry.BalanceAfter,
	})
}

// List handles GET /api/content.
func (h *Content) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	items, err := h.contents.ListByUser(sess.UserID, limit, offset)
	if err != nil {
		slog.Error("list content", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if items == nil {
		items = []*models.ContentItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Detail handles GET /api/content/{id}: the item, its latest version,
// the full version history and image suggestions for the latest draft.
func (h *Content) Detail(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	latest, err := h.contents.LatestVersion(item.ID)
	if err != nil {
		slog.Error("latest version", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	versions, err := h.contents.ListVersions(item.ID)
	if err != nil {
		slog.Error("list versions", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if versions == nil {
		versions = []*models.ContentVersion{}
	}

	imageResults := []images.Result{}
	if latest != nil && latest.ImageSearchTerm != "" && h.images != nil {
		imageResults = h.images.Search(r.Context(), latest.ImageSearchTerm)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"item":     item,
		"latest":   latest,
		"versions": versions,
		"images":   imageResults,
	})
}

// Approve handles POST /api/content/{id}/approve.
func (h *Content) Approve(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	if err := h.contents.UpdateStatus(item.ID, models.ContentStatusApproved); err != nil {
		slog.Error("approve content", "error", err)
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}
	item.Status = models.ContentStatusApproved
	writeJSON(w, http.StatusOK, item)
}

// Improve handles POST /api/content/{id}/improve: a guided rewrite of
// the latest version, stored as the next version.
func (h *Content) Improve(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	var adj generate.Adjustments
	if !decodeJSON(w, r, &adj) {
		return
	}
	if adj.Empty() {
		writeError(w, http.StatusBadRequest, "pick at least one adjustment")
		return
	}

	user, profile, ok := h.userAndProfile(w, r)
	if !ok {
		return
	}
	if !user.CanAfford(generate.CostImprove) {
		writeError(w, http.StatusPaymentRequired, "insufficient credits")
		return
	}

	latest, err := h.contents.LatestVersion(item.ID)
	if err != nil || latest == nil {
		slog.Error("latest version", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	body, err := h.generator.Improve(r.Context(), profile.Summary, latest.BodyMD, adj)
	if err != nil {
		slog.Error("improve draft", "error", err)
		writeError(w, http.StatusBadGateway, "generation is unavailable right now; you were not charged")
		return
	}

	meta, err := h.metaForBody(r, item, body)
	if err != nil {
		slog.Error("improve meta", "error", err)
		writeError(w, http.StatusBadGateway, "generation is unavailable right now; you were not charged")
		return
	}

	version, entry, err := h.contents.CreateVersionAndDebit(
		item.ID, user.ID,
		store.Draft{BodyMD: body, Meta: meta, ImageSearchTerm: latest.ImageSearchTerm},
		models.KindImprove, generate.CostImprove, "improve: "+item.Topic,
	)
	if err != nil {
		slog.Error("store improved draft", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"version": version,
		"balance": entry.BalanceAfter,
	})
}

// ChangeTopic handles POST /api/content/{id}/change-topic: a full
// regeneration on a new topic, keeping the item and its history.
func (h *Content) ChangeTopic(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	var req struct {
		Topic string `json:"topic"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "topic required")
		return
	}

	user, profile, ok := h.userAndProfile(w, r)
	if !ok {
		return
	}
	if !user.CanAfford(generate.CostChangeTopic) {
		writeError(w, http.StatusPaymentRequired, "insufficient credits")
		return
	}

	draft, err := h.generator.ChangeTopic(r.Context(), profile.Summary, item.Type, req.Topic)
	if err != nil {
		slog.Error("change topic", "error", err)
		writeError(w, http.StatusBadGateway, "generation is unavailable right now; you were not charged")
		return
	}

	version, entry, err := h.contents.CreateVersionAndDebit(
		item.ID, user.ID,
		store.Draft{BodyMD: draft.BodyMD, Meta: draft.Meta, ImageSearchTerm: draft.ImageSearchTerm},
		models.KindGeneration, generate.CostChangeTopic, "change topic: "+req.Topic,
	)
	if err != nil {
		slog.Error("store retopic draft", "error", err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	if err := h.contents.UpdateTopic(item.ID, req.Topic); err != nil {
		slog.Error("update topic", "error", err)
	}
	item.Topic = req.Topic

	writeJSON(w, http.StatusCreated, map[string]any{
		"item":    item,
		"version": version,
		"balance": entry.BalanceAfter,
	})
}

// Preview handles GET /api/content/{id}/preview, rendering the latest
// version's Markdown to HTML.
func (h *Content) Preview(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	latest, err := h.contents.LatestVersion(item.ID)
	if err != nil {
		slog.Error("latest version", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if latest == nil {
		writeError(w, http.StatusNotFound, "no draft to preview")
		return
	}

	html, err := markdown.ToHTML(latest.BodyMD)
	if err != nil {
		slog.Error("render preview", "error", err)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"html":       html,
		"version_no": latest.VersionNo,
	})
}

// metaForBody recomputes version metadata after a rewrite: fresh SEO
// fields for blogs, hashtags lifted from the new body for social posts.
func (h *Content) metaForBody(r *http.Request, item *models.ContentItem, body string) (models.Summary, error) {
	if item.Type == models.ContentTypeSocial {
		return models.Summary{"hashtags": generate.ExtractHashtags(body)}, nil
	}
	return h.generator.MetaFromBody(r.Context(), item.Topic, body)
}

// ownedItem loads the {id} item and enforces ownership. Foreign items
// read as missing.
func (h *Content) ownedItem(w http.ResponseWriter, r *http.Request) (*models.ContentItem, bool) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}

	item, err := h.contents.FindByID(id)
	if err != nil {
		slog.Error("find content item", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return nil, false
	}
	if item == nil || item.UserID != sess.UserID {
		writeError(w, http.StatusNotFound, "content not found")
		return nil, false
	}
	return item, true
}

// userAndProfile loads the caller's account and active style profile,
// writing the error response itself when either is unavailable.
func (h *Content) userAndProfile(w http.ResponseWriter, r *http.Request) (*models.User, *models.StyleProfile, bool) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := h.users.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("load user", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return nil, nil, false
	}

	profile, err := h.profiles.Active(sess.UserID)
	if err != nil {
		slog.Error("active profile", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return nil, nil, false
	}
	if profile == nil {
		writeError(w, http.StatusConflict, "no style profile yet; add a writing sample first")
		return nil, nil, false
	}

	return user, profile, true
}
