// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"draftdeck/internal/models"
)

func TestCreditsTopUpAndHistory(t *testing.T) {
	env := newTestEnv(t)
	user := newTestUser(t, env)

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest("POST", "/api/credits/topup",
		strings.NewReader(`{"amount":25}`)), sessionFor(user))
	env.Credits.TopUp(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("topup: got %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var entry models.CreditTransaction
	if err := json.NewDecoder(rec.Body).Decode(&entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry.Kind != models.KindTopUp || entry.Amount != 25 {
		t.Errorf("entry = %s/%d, want topup/25", entry.Kind, entry.Amount)
	}
	if entry.BalanceAfter != models.InitialCredits+25 {
		t.Errorf("balance_after = %d, want %d", entry.BalanceAfter, models.InitialCredits+25)
	}

	rec = httptest.NewRecorder()
	env.Credits.Get(rec, withSession(httptest.NewRequest("GET", "/api/credits", nil), sessionFor(user)))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: got %d, want 200", rec.Code)
	}

	var resp struct {
		Balance      int                         `json:"balance"`
		Transactions []*models.CreditTransaction `json:"transactions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Balance != models.InitialCredits+25 {
		t.Errorf("balance = %d, want %d", resp.Balance, models.InitialCredits+25)
	}
	if len(resp.Transactions) != 1 {
		t.Errorf("transactions = %d, want 1", len(resp.Transactions))
	}
}

func TestTopUpValidation(t *testing.T) {
	env := newTestEnv(t)
	user := newTestUser(t, env)

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{"amount":5000}`} {
		rec := httptest.NewRecorder()
		req := withSession(httptest.NewRequest("POST", "/api/credits/topup", strings.NewReader(body)), sessionFor(user))
		env.Credits.TopUp(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: got %d, want 400", body, rec.Code)
		}
	}
}
