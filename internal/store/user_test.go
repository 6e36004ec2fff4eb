// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"draftdeck/internal/models"
)

func TestUserCreateAndFind(t *testing.T) {
	db := testDB(t)
	users := NewUserStore(db)
	user := testUser(t, db)

	if user.Credits != models.InitialCredits {
		t.Errorf("credits = %d, want initial grant %d", user.Credits, models.InitialCredits)
	}
	if user.Timezone != models.DefaultTimezone {
		t.Errorf("timezone = %q, want %q", user.Timezone, models.DefaultTimezone)
	}
	if user.OnboardingCompleted {
		t.Error("new user should not be onboarded")
	}

	byEmail, err := users.FindByEmail(user.Email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != user.ID {
		t.Errorf("FindByEmail returned %+v", byEmail)
	}

	byID, err := users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID == nil || byID.Email != user.Email {
		t.Errorf("FindByID returned %+v", byID)
	}
}

func TestUserFindMissing(t *testing.T) {
	db := testDB(t)
	users := NewUserStore(db)

	u, err := users.FindByEmail("nobody@draftdeck.test")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u != nil {
		t.Errorf("expected nil, got %+v", u)
	}
}

func TestUserCheckPassword(t *testing.T) {
	db := testDB(t)
	users := NewUserStore(db)
	user := testUser(t, db)

	if !users.CheckPassword(user, "test-password") {
		t.Error("correct password rejected")
	}
	if users.CheckPassword(user, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestUserUpdateTimezoneAndOnboarding(t *testing.T) {
	db := testDB(t)
	users := NewUserStore(db)
	user := testUser(t, db)

	if err := users.UpdateTimezone(user.ID, "Europe/Bucharest"); err != nil {
		t.Fatalf("UpdateTimezone: %v", err)
	}
	if err := users.MarkOnboardingCompleted(user.ID); err != nil {
		t.Fatalf("MarkOnboardingCompleted: %v", err)
	}

	got, err := users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Timezone != "Europe/Bucharest" {
		t.Errorf("timezone = %q", got.Timezone)
	}
	if !got.OnboardingCompleted {
		t.Error("onboarding flag not set")
	}
}

func TestOnboardingUpsert(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	onboardings := NewOnboardingStore(db)

	first, err := onboardings.Upsert(&models.Onboarding{
		UserID:   user.ID,
		Industry: "fintech",
		Bio:      "first bio",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	second, err := onboardings.Upsert(&models.Onboarding{
		UserID:   user.ID,
		Industry: "healthcare",
		Bio:      "second bio",
	})
	if err != nil {
		t.Fatalf("Upsert again: %v", err)
	}
	if second.ID != first.ID {
		t.Error("upsert should keep one row per user")
	}
	if second.Industry != "healthcare" || second.Bio != "second bio" {
		t.Errorf("answers not replaced: %+v", second)
	}

	found, err := onboardings.FindByUser(user.ID)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if found.Industry != "healthcare" {
		t.Errorf("found = %+v", found)
	}
}
