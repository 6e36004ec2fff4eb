// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"draftdeck/internal/models"
)

func TestGuidelinePillarCRUD(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	guidelines := NewGuidelineStore(db)

	pillar, err := guidelines.CreatePillar(&models.GuidelinePillar{
		UserID:      user.ID,
		Title:       "Customer stories",
		Description: "Wins from real customers",
		Keywords:    "case study, testimonial",
	})
	if err != nil {
		t.Fatalf("CreatePillar: %v", err)
	}

	if err := guidelines.UpdatePillar(pillar.ID, "Success stories", "desc", "kw"); err != nil {
		t.Fatalf("UpdatePillar: %v", err)
	}
	got, err := guidelines.FindPillar(pillar.ID)
	if err != nil {
		t.Fatalf("FindPillar: %v", err)
	}
	if got.Title != "Success stories" {
		t.Errorf("title = %q", got.Title)
	}

	list, err := guidelines.ListPillars(user.ID)
	if err != nil {
		t.Fatalf("ListPillars: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d pillars, want 1", len(list))
	}

	if err := guidelines.DeletePillar(pillar.ID); err != nil {
		t.Fatalf("DeletePillar: %v", err)
	}
	if got, _ := guidelines.FindPillar(pillar.ID); got != nil {
		t.Error("pillar survived delete")
	}
}

func TestGuidelineScheduleUpsertOnePerWeekday(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	guidelines := NewGuidelineStore(db)

	pillar, err := guidelines.CreatePillar(&models.GuidelinePillar{UserID: user.ID, Title: "Tips"})
	if err != nil {
		t.Fatalf("CreatePillar: %v", err)
	}

	first, err := guidelines.UpsertSchedule(user.ID, 0, &pillar.ID, "monday tips")
	if err != nil {
		t.Fatalf("UpsertSchedule: %v", err)
	}
	second, err := guidelines.UpsertSchedule(user.ID, 0, nil, "monday freestyle")
	if err != nil {
		t.Fatalf("UpsertSchedule again: %v", err)
	}
	if second.ID != first.ID {
		t.Error("same weekday should update in place")
	}
	if second.PillarID != nil || second.Notes != "monday freestyle" {
		t.Errorf("slot not replaced: %+v", second)
	}

	schedules, err := guidelines.ListSchedules(user.ID)
	if err != nil {
		t.Fatalf("ListSchedules: %v", err)
	}
	if len(schedules) != 1 {
		t.Fatalf("got %d schedules, want 1", len(schedules))
	}

	if err := guidelines.DeleteSchedule(user.ID, 0); err != nil {
		t.Fatalf("DeleteSchedule: %v", err)
	}
	schedules, _ = guidelines.ListSchedules(user.ID)
	if len(schedules) != 0 {
		t.Errorf("slot survived delete: %+v", schedules)
	}
}

func TestGuidelineDeletePillarClearsScheduleReference(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	guidelines := NewGuidelineStore(db)

	pillar, err := guidelines.CreatePillar(&models.GuidelinePillar{UserID: user.ID, Title: "Doomed"})
	if err != nil {
		t.Fatalf("CreatePillar: %v", err)
	}
	if _, err := guidelines.UpsertSchedule(user.ID, 2, &pillar.ID, ""); err != nil {
		t.Fatalf("UpsertSchedule: %v", err)
	}

	if err := guidelines.DeletePillar(pillar.ID); err != nil {
		t.Fatalf("DeletePillar: %v", err)
	}

	schedules, err := guidelines.ListSchedules(user.ID)
	if err != nil {
		t.Fatalf("ListSchedules: %v", err)
	}
	if len(schedules) != 1 {
		t.Fatal("slot should survive pillar deletion")
	}
	if schedules[0].PillarID != nil {
		t.Error("pillar reference should be cleared")
	}
}
