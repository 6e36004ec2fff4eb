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

const uploadColumns = `id, user_id, source, file_type, filename, s3_key,
	size_bytes, text_extract, created_at`

// UploadStore provides access to writing-sample uploads.
type UploadStore struct {
	db *sql.DB
}

// NewUploadStore creates a new UploadStore backed by the given database.
func NewUploadStore(db *sql.DB) *UploadStore {
	return &UploadStore{db: db}
}

func scanUpload(scanner interface{ Scan(...any) error }) (*models.Upload, error) {
	u := &models.Upload{}
	err := scanner.Scan(
		&u.ID, &u.UserID, &u.Source, &u.FileType, &u.Filename,
		&u.S3Key, &u.SizeBytes, &u.TextExtract, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new upload row with its extracted text.
func (s *UploadStore) Create(up *models.Upload) (*models.Upload, error) {
	saved, err := scanUpload(s.db.QueryRow(`
		INSERT INTO uploads (user_id, source, file_type, filename, s3_key, size_bytes, text_extract)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+uploadColumns,
		up.UserID, up.Source, up.FileType, up.Filename, up.S3Key, up.SizeBytes, up.TextExtract,
	))
	if err != nil {
		return nil, fmt.Errorf("create upload: %w", err)
	}
	return saved, nil
}

// ListByUser returns all of a user's uploads, newest first.
func (s *UploadStore) ListByUser(userID uuid.UUID) ([]*models.Upload, error) {
	rows, err := s.db.Query(`
		SELECT `+uploadColumns+`
		FROM uploads
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	var uploads []*models.Upload
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// FindByID returns a single upload. Returns nil if not found.
func (s *UploadStore) FindByID(id uuid.UUID) (*models.Upload, error) {
	u, err := scanUpload(s.db.QueryRow(`
		SELECT `+uploadColumns+` FROM uploads WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find upload: %w", err)
	}
	return u, nil
}

// Delete removes an upload row. The caller deletes the S3 object.
func (s *UploadStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM uploads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}
