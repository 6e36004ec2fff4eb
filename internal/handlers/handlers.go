// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the DraftDeck JSON API.
// Handlers are grouped by concern (auth, onboarding, uploads, style,
// credits, content, calendar, pillars, images), each group a struct
// holding its dependencies.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxJSONBody caps request bodies on JSON endpoints. File uploads have
// their own, larger cap.
const maxJSONBody = 1 << 20

// errNoCorpus is returned by the profile rebuilder when the user has no
// analyzable text at all.
var errNoCorpus = errors.New("no writing samples to analyze")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a JSON request body into dst. On failure it writes a
// 400 and returns false; the handler just returns.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := io.LimitReader(r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// pathID parses a UUID route parameter. On failure it writes a 400 and
// returns false.
func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
