// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"draftdeck/internal/models"
)

func TestPillarCRUD(t *testing.T) {
	env := newTestEnv(t)
	user := newTestUser(t, env)

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest("POST", "/api/pillars",
		strings.NewReader(`{"title":"Customer stories","description":"wins from real users","keywords":"case study, customer"}`)), sessionFor(user))
	env.Pillars.Create(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var pillar models.GuidelinePillar
	if err := json.NewDecoder(rec.Body).Decode(&pillar); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = httptest.NewRecorder()
	req = withURLParamAndSession(httptest.NewRequest("PUT", "/api/pillars/"+pillar.ID.String(),
		strings.NewReader(`{"title":"Success stories","description":"","keywords":""}`)),
		"id", pillar.ID.String(), sessionFor(user))
	env.Pillars.Update(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	env.Pillars.List(rec, withSession(httptest.NewRequest("GET", "/api/pillars", nil), sessionFor(user)))
	var pillars []*models.GuidelinePillar
	if err := json.NewDecoder(rec.Body).Decode(&pillars); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(pillars) != 1 || pillars[0].Title != "Success stories" {
		t.Errorf("list = %v, want one renamed pillar", pillars)
	}

	rec = httptest.NewRecorder()
	req = withURLParamAndSession(httptest.NewRequest("DELETE", "/api/pillars/"+pillar.ID.String(), nil),
		"id", pillar.ID.String(), sessionFor(user))
	env.Pillars.Delete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete: got %d, want 204", rec.Code)
	}
}

func TestPutScheduleReplacesWeek(t *testing.T) {
	env := newTestEnv(t)
	user := newTestUser(t, env)

	pillar, err := env.Guidelines.CreatePillar(&models.GuidelinePillar{UserID: user.ID, Title: "Tips"})
	if err != nil {
		t.Fatalf("create pillar: %v", err)
	}

	// Seed a Friday slot that the PUT below does not mention.
	if _, err := env.Guidelines.UpsertSchedule(user.ID, 4, nil, "old friday slot"); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	body := fmt.Sprintf(`{"slots":[
		{"day_of_week":0,"pillar_id":%q,"notes":"kick off the week"},
		{"day_of_week":2,"notes":"midweek"}
	]}`, pillar.ID)

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest("PUT", "/api/schedule", strings.NewReader(body)), sessionFor(user))
	env.Pillars.PutSchedule(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var schedules []*models.GuidelineSchedule
	if err := json.NewDecoder(rec.Body).Decode(&schedules); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("schedules = %d, want 2 (friday cleared)", len(schedules))
	}
	if schedules[0].DayOfWeek != 0 || schedules[0].PillarID == nil || *schedules[0].PillarID != pillar.ID {
		t.Errorf("monday slot = %+v, want pillar %s", schedules[0], pillar.ID)
	}
	if schedules[1].DayOfWeek != 2 || schedules[1].PillarID != nil {
		t.Errorf("wednesday slot = %+v, want notes only", schedules[1])
	}
}

func TestPutScheduleValidation(t *testing.T) {
	env := newTestEnv(t)
	user := newTestUser(t, env)
	other := newTestUser(t, env)

	foreign, err := env.Guidelines.CreatePillar(&models.GuidelinePillar{UserID: other.ID, Title: "Not yours"})
	if err != nil {
		t.Fatalf("create pillar: %v", err)
	}

	cases := []struct {
		name string
		body string
	}{
		{"day out of range", `{"slots":[{"day_of_week":7}]}`},
		{"duplicate day", `{"slots":[{"day_of_week":1},{"day_of_week":1}]}`},
		{"foreign pillar", fmt.Sprintf(`{"slots":[{"day_of_week":1,"pillar_id":%q}]}`, foreign.ID)},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := withSession(httptest.NewRequest("PUT", "/api/schedule", strings.NewReader(tc.body)), sessionFor(user))
		env.Pillars.PutSchedule(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", tc.name, rec.Code)
		}
	}
}
