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

const pillarColumns = `id, user_id, title, description, keywords, created_at`

const scheduleColumns = `id, user_id, day_of_week, pillar_id, notes, created_at`

// GuidelineStore provides access to content pillars and the weekly
// posting schedule.
type GuidelineStore struct {
	db *sql.DB
}

// NewGuidelineStore creates a new GuidelineStore backed by the given database.
func NewGuidelineStore(db *sql.DB) *GuidelineStore {
	return &GuidelineStore{db: db}
}

func scanPillar(scanner interface{ Scan(...any) error }) (*models.GuidelinePillar, error) {
	p := &models.GuidelinePillar{}
	err := scanner.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Keywords, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanSchedule(scanner interface{ Scan(...any) error }) (*models.GuidelineSchedule, error) {
	s := &models.GuidelineSchedule{}
	err := scanner.Scan(&s.ID, &s.UserID, &s.DayOfWeek, &s.PillarID, &s.Notes, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreatePillar inserts a new content pillar.
func (s *GuidelineStore) CreatePillar(p *models.GuidelinePillar) (*models.GuidelinePillar, error) {
	saved, err := scanPillar(s.db.QueryRow(`
		INSERT INTO guideline_pillars (user_id, title, description, keywords)
		VALUES ($1, $2, $3, $4)
		RETURNING `+pillarColumns,
		p.UserID, p.Title, p.Description, p.Keywords,
	))
	if err != nil {
		return nil, fmt.Errorf("create pillar: %w", err)
	}
	return saved, nil
}

// UpdatePillar replaces a pillar's editable fields.
func (s *GuidelineStore) UpdatePillar(id uuid.UUID, title, description, keywords string) error {
	_, err := s.db.Exec(`
		UPDATE guideline_pillars SET title = $1, description = $2, keywords = $3 WHERE id = $4
	`, title, description, keywords, id)
	if err != nil {
		return fmt.Errorf("update pillar: %w", err)
	}
	return nil
}

// DeletePillar removes a pillar. Schedule rows pointing at it keep
// their slot with the pillar reference cleared.
func (s *GuidelineStore) DeletePillar(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM guideline_pillars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pillar: %w", err)
	}
	return nil
}

// FindPillar returns a single pillar. Returns nil if not found.
func (s *GuidelineStore) FindPillar(id uuid.UUID) (*models.GuidelinePillar, error) {
	p, err := scanPillar(s.db.QueryRow(`
		SELECT `+pillarColumns+` FROM guideline_pillars WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find pillar: %w", err)
	}
	return p, nil
}

// ListPillars returns all of a user's pillars, oldest first.
func (s *GuidelineStore) ListPillars(userID uuid.UUID) ([]*models.GuidelinePillar, error) {
	rows, err := s.db.Query(`
		SELECT `+pillarColumns+`
		FROM guideline_pillars
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list pillars: %w", err)
	}
	defer rows.Close()

	var pillars []*models.GuidelinePillar
	for rows.Next() {
		p, err := scanPillar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pillar: %w", err)
		}
		pillars = append(pillars, p)
	}
	return pillars, rows.Err()
}

// UpsertSchedule assigns a pillar (or just notes) to a weekday. One
// row per user per weekday.
func (s *GuidelineStore) UpsertSchedule(userID uuid.UUID, dayOfWeek int, pillarID *uuid.UUID, notes string) (*models.GuidelineSchedule, error) {
	saved, err := scanSchedule(s.db.QueryRow(`
		INSERT INTO guideline_schedules (user_id, day_of_week, pillar_id, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, day_of_week) DO UPDATE SET
			pillar_id = EXCLUDED.pillar_id,
			notes = EXCLUDED.notes
		RETURNING `+scheduleColumns,
		userID, dayOfWeek, pillarID, notes,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert schedule: %w", err)
	}
	return saved, nil
}

// DeleteSchedule clears a weekday slot.
func (s *GuidelineStore) DeleteSchedule(userID uuid.UUID, dayOfWeek int) error {
	_, err := s.db.Exec(`
		DELETE FROM guideline_schedules WHERE user_id = $1 AND day_of_week = $2
	`, userID, dayOfWeek)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

// ListSchedules returns the user's weekly schedule ordered Monday first.
func (s *GuidelineStore) ListSchedules(userID uuid.UUID) ([]*models.GuidelineSchedule, error) {
	rows, err := s.db.Query(`
		SELECT `+scheduleColumns+`
		FROM guideline_schedules
		WHERE user_id = $1
		ORDER BY day_of_week ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*models.GuidelineSchedule
	for rows.Next() {
		sch, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, sch)
	}
	return schedules, rows.Err()
}
