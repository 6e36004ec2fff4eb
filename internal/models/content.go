// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentType distinguishes long-form blog drafts from short social posts.
type ContentType string

const (
	ContentTypeBlog   ContentType = "blog"
	ContentTypeSocial ContentType = "social"
)

// ValidContentType reports whether t is a known content type.
func ValidContentType(t ContentType) bool {
	return t == ContentTypeBlog || t == ContentTypeSocial
}

// ContentStatus represents the editorial state of a content item.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusApproved  ContentStatus = "approved"
	ContentStatusPublished ContentStatus = "published"
)

// ContentItem is one scheduled piece of content. Topic and Status are the
// only fields mutated after creation (by change-topic and approve); the
// drafts themselves live in ContentVersion rows.
type ContentItem struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	Type         ContentType   `json:"type"`
	Topic        string        `json:"topic"`
	Status       ContentStatus `json:"status"`
	ScheduledFor *time.Time    `json:"scheduled_for,omitempty"` // user-local midnight, stored UTC
	CreatedAt    time.Time     `json:"created_at"`
}

// ContentVersion is one immutable snapshot of an item's draft. VersionNo is
// unique per item and contiguous from 1; "latest" means max VersionNo.
type ContentVersion struct {
	ID              uuid.UUID `json:"id"`
	ContentID       uuid.UUID `json:"content_id"`
	VersionNo       int       `json:"version_no"`
	BodyMD          string    `json:"body_md"`
	Meta            Summary   `json:"meta"` // blog: meta_title/meta_description/keywords; social: hashtags
	ImageSearchTerm string    `json:"image_search_term"`
	CreatedAt       time.Time `json:"created_at"`
}
