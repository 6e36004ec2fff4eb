// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"draftdeck/internal/images"
)

// Images serves stock photo search for the draft editor.
type Images struct {
	service *images.Service
}

// NewImages creates the images handler group.
func NewImages(service *images.Service) *Images {
	return &Images{service: service}
}

// Search handles GET /api/images/search?q=&count=. Lookups are free and
// degrade to an empty list when no provider is configured.
func (h *Images) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "q required")
		return
	}

	results := []images.Result{}
	if h.service != nil {
		results = h.service.Search(r.Context(), query)
	}

	if countStr := r.URL.Query().Get("count"); countStr != "" {
		if count, err := strconv.Atoi(countStr); err == nil && count > 0 && count < len(results) {
			results = results[:count]
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}
