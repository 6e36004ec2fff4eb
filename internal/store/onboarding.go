// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"draftdeck/internal/models"
)

const onboardingColumns = `id, user_id, industry, goals, style_keywords,
	topical_keywords, bio, style_self_desc, created_at, updated_at`

// OnboardingStore provides access to onboarding intake answers.
type OnboardingStore struct {
	db *sql.DB
}

// NewOnboardingStore creates a new OnboardingStore backed by the given database.
func NewOnboardingStore(db *sql.DB) *OnboardingStore {
	return &OnboardingStore{db: db}
}

func scanOnboarding(scanner interface{ Scan(...any) error }) (*models.Onboarding, error) {
	o := &models.Onboarding{}
	err := scanner.Scan(
		&o.ID, &o.UserID, &o.Industry, &o.Goals, &o.StyleKeywords,
		&o.TopicalKeywords, &o.Bio, &o.StyleSelfDesc, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Upsert saves the intake answers for a user, replacing any previous
// answers. One row per user.
func (s *OnboardingStore) Upsert(o *models.Onboarding) (*models.Onboarding, error) {
	saved, err := scanOnboarding(s.db.QueryRow(`
		INSERT INTO onboardings (user_id, industry, goals, style_keywords, topical_keywords, bio, style_self_desc)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			industry = EXCLUDED.industry,
			goals = EXCLUDED.goals,
			style_keywords = EXCLUDED.style_keywords,
			topical_keywords = EXCLUDED.topical_keywords,
			bio = EXCLUDED.bio,
			style_self_desc = EXCLUDED.style_self_desc,
			updated_at = NOW()
		RETURNING `+onboardingColumns,
		o.UserID, o.Industry, o.Goals, o.StyleKeywords, o.TopicalKeywords, o.Bio, o.StyleSelfDesc,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert onboarding: %w", err)
	}
	return saved, nil
}

// FindByUser returns a user's intake answers. Returns nil if not found.
func (s *OnboardingStore) FindByUser(userID uuid.UUID) (*models.Onboarding, error) {
	o, err := scanOnboarding(s.db.QueryRow(`
		SELECT `+onboardingColumns+` FROM onboardings WHERE user_id = $1
	`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find onboarding: %w", err)
	}
	return o, nil
}
