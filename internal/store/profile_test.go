// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"draftdeck/internal/models"
)

func TestProfileCreateVersionSingleActive(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	profiles := NewProfileStore(db)

	first, err := profiles.CreateVersion(user.ID, models.Summary{"voice_summary": "v1"}, []string{"fact one"})
	if err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	if first.Version != 1 || !first.Active {
		t.Errorf("first profile = v%d active=%v, want v1 active", first.Version, first.Active)
	}

	second, err := profiles.CreateVersion(user.ID, models.Summary{"voice_summary": "v2"}, nil)
	if err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	if second.Version != 2 || !second.Active {
		t.Errorf("second profile = v%d active=%v, want v2 active", second.Version, second.Active)
	}

	var activeCount int
	if err := db.QueryRow(
		`SELECT COUNT(*) FROM style_profiles WHERE user_id = $1 AND active`, user.ID,
	).Scan(&activeCount); err != nil {
		t.Fatalf("count active: %v", err)
	}
	if activeCount != 1 {
		t.Errorf("active profiles = %d, want exactly 1", activeCount)
	}

	active, err := profiles.Active(user.ID)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active profile is v%d, want v%d", active.Version, second.Version)
	}
	if got := active.Summary.Str("voice_summary", ""); got != "v2" {
		t.Errorf("summary round-trip: %q", got)
	}
}

func TestProfileActiveNoneYet(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)

	p, err := NewProfileStore(db).Active(user.ID)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for user with no profiles, got %+v", p)
	}
}

func TestProfileVersionCountsInactiveRows(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	profiles := NewProfileStore(db)

	for i := 0; i < 3; i++ {
		if _, err := profiles.CreateVersion(user.ID, models.Summary{}, nil); err != nil {
			t.Fatalf("CreateVersion: %v", err)
		}
	}

	list, err := profiles.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d versions, want 3", len(list))
	}
	// Newest first, contiguous from 1.
	for i, p := range list {
		if want := 3 - i; p.Version != want {
			t.Errorf("list[%d].Version = %d, want %d", i, p.Version, want)
		}
	}
}

func TestProfileFunFactsRoundTrip(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	profiles := NewProfileStore(db)

	facts := []string{"loves commas", "hates adverbs"}
	p, err := profiles.CreateVersion(user.ID, models.Summary{}, facts)
	if err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	if len(p.FunFacts) != 2 || p.FunFacts[0] != "loves commas" {
		t.Errorf("fun facts = %v", p.FunFacts)
	}

	// nil facts stored as empty list, not null.
	p2, err := profiles.CreateVersion(user.ID, models.Summary{}, nil)
	if err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	if p2.FunFacts == nil {
		t.Error("nil fun facts should round-trip as empty list")
	}
}
