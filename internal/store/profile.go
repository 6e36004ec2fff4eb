// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"draftdeck/internal/models"
)

const profileColumns = `id, user_id, version, summary, fun_facts, active, created_at`

// ProfileStore provides access to versioned style profiles.
// Invariant: at most one active profile per user, enforced by doing
// deactivation and insert in one transaction.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore creates a new ProfileStore backed by the given database.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func scanProfile(scanner interface{ Scan(...any) error }) (*models.StyleProfile, error) {
	p := &models.StyleProfile{}
	var summaryRaw, factsRaw []byte
	err := scanner.Scan(&p.ID, &p.UserID, &p.Version, &summaryRaw, &factsRaw, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(summaryRaw, &p.Summary); err != nil {
		return nil, fmt.Errorf("decode profile summary: %w", err)
	}
	if err := json.Unmarshal(factsRaw, &p.FunFacts); err != nil {
		return nil, fmt.Errorf("decode profile fun facts: %w", err)
	}
	return p, nil
}

// CreateVersion deactivates the user's current profile and inserts the
// next version as active, in one transaction. The new version number is
// always one past the user's highest, including inactive rows.
func (s *ProfileStore) CreateVersion(userID uuid.UUID, summary models.Summary, funFacts []string) (*models.StyleProfile, error) {
	if summary == nil {
		summary = models.Summary{}
	}
	if funFacts == nil {
		funFacts = []string{}
	}
	summaryRaw, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("encode profile summary: %w", err)
	}
	factsRaw, err := json.Marshal(funFacts)
	if err != nil {
		return nil, fmt.Errorf("encode profile fun facts: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin profile tx: %w", err)
	}
	defer tx.Rollback()

	// Covers stray rows too, not just the single expected active one.
	if _, err := tx.Exec(`
		UPDATE style_profiles SET active = FALSE WHERE user_id = $1 AND active
	`, userID); err != nil {
		return nil, fmt.Errorf("deactivate profiles: %w", err)
	}

	profile, err := scanProfile(tx.QueryRow(`
		INSERT INTO style_profiles (user_id, version, summary, fun_facts, active)
		SELECT $1, COALESCE(MAX(version), 0) + 1, $2, $3, TRUE
		FROM style_profiles WHERE user_id = $1
		RETURNING `+profileColumns,
		userID, summaryRaw, factsRaw,
	))
	if err != nil {
		return nil, fmt.Errorf("insert profile version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile tx: %w", err)
	}
	return profile, nil
}

// Active returns the user's active profile. Returns nil if the user has
// no profile yet.
func (s *ProfileStore) Active(userID uuid.UUID) (*models.StyleProfile, error) {
	p, err := scanProfile(s.db.QueryRow(`
		SELECT `+profileColumns+`
		FROM style_profiles
		WHERE user_id = $1 AND active
		ORDER BY version DESC
		LIMIT 1
	`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active profile: %w", err)
	}
	return p, nil
}

// ListByUser returns all of a user's profile versions, newest first.
func (s *ProfileStore) ListByUser(userID uuid.UUID) ([]*models.StyleProfile, error) {
	rows, err := s.db.Query(`
		SELECT `+profileColumns+`
		FROM style_profiles
		WHERE user_id = $1
		ORDER BY version DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.StyleProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
