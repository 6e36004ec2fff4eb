// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"draftdeck/internal/middleware"
	"draftdeck/internal/models"
	"draftdeck/internal/store"
)

// maxTopUp caps a single manual top-up. There is no billing integration;
// top-ups are an operator action on behalf of the user.
const maxTopUp = 1000

// Credits serves the balance page and manual top-ups.
type Credits struct {
	ledger *store.LedgerStore
}

// NewCredits creates the credits handler group.
func NewCredits(ledger *store.LedgerStore) *Credits {
	return &Credits{ledger: ledger}
}

// Get handles GET /api/credits: current balance plus recent history.
func (h *Credits) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	balance, err := h.ledger.Balance(sess.UserID)
	if err != nil {
		slog.Error("read balance", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.ledger.ListByUser(sess.UserID, limit)
	if err != nil {
		slog.Error("list transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if entries == nil {
		entries = []*models.CreditTransaction{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"balance":      balance,
		"transactions": entries,
	})
}

// TopUp handles POST /api/credits/topup.
func (h *Credits) TopUp(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		Amount int    `json:"amount"`
		Note   string `json:"note"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Amount <= 0 || req.Amount > maxTopUp {
		writeError(w, http.StatusBadRequest, "amount must be between 1 and 1000")
		return
	}

	note := req.Note
	if note == "" {
		note = "manual top-up"
	}

	entry, err := h.ledger.Record(sess.UserID, models.KindTopUp, req.Amount, note)
	if err != nil {
		slog.Error("top up", "error", err)
		writeError(w, http.StatusInternalServerError, "top-up failed")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}
