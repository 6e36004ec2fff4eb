// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTimezone is assigned to new accounts until the user picks their own.
const DefaultTimezone = "Asia/Kolkata"

// InitialCredits is the free balance granted to every new account.
const InitialCredits = 50

// User represents an account holder. Credits are only ever mutated through
// the ledger's Record method, never by writing the column directly.
type User struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"` // Never serialize the hash
	DisplayName         string    `json:"display_name"`
	Timezone            string    `json:"timezone"` // IANA zone name
	Credits             int       `json:"credits"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Location resolves the user's IANA timezone, falling back to the default
// zone when the stored name is empty or invalid.
func (u *User) Location() *time.Location {
	name := u.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc, _ = time.LoadLocation(DefaultTimezone)
	}
	return loc
}

// CanAfford reports whether the balance covers a paid action. Callers must
// check this before invoking any generation call; the ledger clamps at
// zero rather than rejecting, so a late check would under-debit.
func (u *User) CanAfford(cost int) bool {
	return u.Credits >= cost
}
