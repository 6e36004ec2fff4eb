// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// GuidelinePillar is a recurring content theme the user wants to cover
// (e.g. "Customer stories"). Pillars feed the calendar's topic suggestions.
type GuidelinePillar struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    string    `json:"keywords"` // comma-separated
	CreatedAt   time.Time `json:"created_at"`
}

// GuidelineSchedule assigns a pillar to a weekday. DayOfWeek follows the
// calendar convention 0=Monday .. 6=Sunday; one row per user per weekday.
type GuidelineSchedule struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	DayOfWeek int        `json:"day_of_week"`
	PillarID  *uuid.UUID `json:"pillar_id,omitempty"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}
