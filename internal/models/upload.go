// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// UploadSource distinguishes uploaded files from posts typed into the UI.
type UploadSource string

const (
	SourceFile  UploadSource = "file"
	SourceTyped UploadSource = "typed"
)

// FileType records the original format of an upload's text.
type FileType string

const (
	FileTypeTxt  FileType = "txt"
	FileTypePdf  FileType = "pdf"
	FileTypeText FileType = "text" // typed post, no backing file
)

// MaxUploadBytes is the size cap for writing-sample files (25MB).
const MaxUploadBytes = 25 << 20

// Upload is one writing sample contributed by a user. The extracted plain
// text is written once after ingestion and never mutated afterwards; the
// only lifecycle operation after that is deletion.
type Upload struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Source      UploadSource `json:"source"`
	FileType    FileType     `json:"file_type"`
	Filename    string       `json:"filename"`
	S3Key       *string      `json:"-"` // nil for typed posts
	SizeBytes   int64        `json:"size_bytes"`
	TextExtract string       `json:"text_extract"`
	CreatedAt   time.Time    `json:"created_at"`
}

// DisplayName returns the filename, or a placeholder for typed posts.
func (u *Upload) DisplayName() string {
	if u.Source == SourceTyped || u.Filename == "" {
		return "(typed post)"
	}
	return u.Filename
}
