// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Onboarding holds the free-text preferences captured once per user after
// signup. The fields double as UI state and as a seed corpus when the user
// has no uploads yet.
type Onboarding struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Industry         string    `json:"industry"`
	Goals            string    `json:"goals"`
	StyleKeywords    string    `json:"style_keywords"`   // comma/newline separated
	TopicalKeywords  string    `json:"topical_keywords"` // comma/newline separated
	Bio              string    `json:"bio"`
	StyleSelfDesc    string    `json:"style_self_desc"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
