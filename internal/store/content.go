// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"draftdeck/internal/models"
)

const itemColumns = `id, user_id, type, topic, status, scheduled_for, created_at`

const versionColumns = `id, content_id, version_no, body_md, meta, image_search_term, created_at`

// ContentStore provides access to content items and their version
// history. Version numbers are contiguous from 1 per item; generation
// debits land in the same transaction as the version insert, so a
// stored draft is always paid for and a failed insert never charges.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore backed by the given database.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

func scanItem(scanner interface{ Scan(...any) error }) (*models.ContentItem, error) {
	i := &models.ContentItem{}
	err := scanner.Scan(&i.ID, &i.UserID, &i.Type, &i.Topic, &i.Status, &i.ScheduledFor, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func scanVersion(scanner interface{ Scan(...any) error }) (*models.ContentVersion, error) {
	v := &models.ContentVersion{}
	var metaRaw []byte
	err := scanner.Scan(&v.ID, &v.ContentID, &v.VersionNo, &v.BodyMD, &metaRaw, &v.ImageSearchTerm, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(metaRaw, &v.Meta); err != nil {
		return nil, fmt.Errorf("decode version meta: %w", err)
	}
	return v, nil
}

// CreateItem inserts a new content item in draft status.
func (s *ContentStore) CreateItem(item *models.ContentItem) (*models.ContentItem, error) {
	saved, err := scanItem(s.db.QueryRow(`
		INSERT INTO content_items (user_id, type, topic, status, scheduled_for)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+itemColumns,
		item.UserID, item.Type, item.Topic, models.ContentStatusDraft, item.ScheduledFor,
	))
	if err != nil {
		return nil, fmt.Errorf("create content item: %w", err)
	}
	return saved, nil
}

// Draft is the version payload stored by generation operations.
type Draft struct {
	BodyMD          string
	Meta            models.Summary
	ImageSearchTerm string
}

// CreateVersionAndDebit appends the next version to an item and debits
// the generation cost, all in one transaction. cost is positive; a
// zero cost skips the ledger entry (used for re-stores that are free).
// Returns the stored version and the ledger entry, if any.
func (s *ContentStore) CreateVersionAndDebit(contentID, userID uuid.UUID, draft Draft, kind models.TransactionKind, cost int, note string) (*models.ContentVersion, *models.CreditTransaction, error) {
	metaRaw, err := marshalMeta(draft.Meta)
	if err != nil {
		return nil, nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("begin version tx: %w", err)
	}
	defer tx.Rollback()

	version, err := insertVersionInTx(tx, contentID, draft.BodyMD, metaRaw, draft.ImageSearchTerm)
	if err != nil {
		return nil, nil, err
	}

	var entry *models.CreditTransaction
	if cost > 0 {
		entry, err = recordInTx(tx, userID, kind, -cost, note)
		if err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit version tx: %w", err)
	}
	return version, entry, nil
}

// ScheduledDraft pairs a calendar slot with its generated first draft,
// for batch creation.
type ScheduledDraft struct {
	Type         models.ContentType
	Topic        string
	ScheduledFor time.Time
	Draft        Draft
}

// CreateScheduledBatch creates scheduled items with their first
// versions and a single combined debit, all in one transaction. Either
// the whole batch lands and is paid for once, or nothing changes.
func (s *ContentStore) CreateScheduledBatch(userID uuid.UUID, drafts []ScheduledDraft, totalCost int, note string) ([]*models.ContentItem, error) {
	if len(drafts) == 0 {
		return nil, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin batch tx: %w", err)
	}
	defer tx.Rollback()

	items := make([]*models.ContentItem, 0, len(drafts))
	for _, d := range drafts {
		item, err := scanItem(tx.QueryRow(`
			INSERT INTO content_items (user_id, type, topic, status, scheduled_for)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+itemColumns,
			userID, d.Type, d.Topic, models.ContentStatusDraft, d.ScheduledFor,
		))
		if err != nil {
			return nil, fmt.Errorf("create scheduled item: %w", err)
		}

		metaRaw, err := marshalMeta(d.Draft.Meta)
		if err != nil {
			return nil, err
		}
		if _, err := insertVersionInTx(tx, item.ID, d.Draft.BodyMD, metaRaw, d.Draft.ImageSearchTerm); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if totalCost > 0 {
		if _, err := recordInTx(tx, userID, models.KindGeneration, -totalCost, note); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch tx: %w", err)
	}
	return items, nil
}

func marshalMeta(meta models.Summary) ([]byte, error) {
	if meta == nil {
		meta = models.Summary{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode version meta: %w", err)
	}
	return raw, nil
}

func insertVersionInTx(tx *sql.Tx, contentID uuid.UUID, bodyMD string, metaRaw []byte, imageTerm string) (*models.ContentVersion, error) {
	version, err := scanVersion(tx.QueryRow(`
		INSERT INTO content_versions (content_id, version_no, body_md, meta, image_search_term)
		SELECT $1, COALESCE(MAX(version_no), 0) + 1, $2, $3, $4
		FROM content_versions WHERE content_id = $1
		RETURNING `+versionColumns,
		contentID, bodyMD, metaRaw, imageTerm,
	))
	if err != nil {
		return nil, fmt.Errorf("insert content version: %w", err)
	}
	return version, nil
}

// FindByID returns a content item. Returns nil if not found.
func (s *ContentStore) FindByID(id uuid.UUID) (*models.ContentItem, error) {
	i, err := scanItem(s.db.QueryRow(`
		SELECT `+itemColumns+` FROM content_items WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content item: %w", err)
	}
	return i, nil
}

// ListByUser returns a page of the user's content items, newest first.
func (s *ContentStore) ListByUser(userID uuid.UUID, limit, offset int) ([]*models.ContentItem, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT `+itemColumns+`
		FROM content_items
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// ListScheduledRange returns the user's items scheduled inside the UTC
// half-open interval [start, end), soonest first.
func (s *ContentStore) ListScheduledRange(userID uuid.UUID, start, end time.Time) ([]*models.ContentItem, error) {
	rows, err := s.db.Query(`
		SELECT `+itemColumns+`
		FROM content_items
		WHERE user_id = $1 AND scheduled_for >= $2 AND scheduled_for < $3
		ORDER BY scheduled_for ASC
	`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list scheduled items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows *sql.Rows) ([]*models.ContentItem, error) {
	var items []*models.ContentItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// LatestVersion returns the item's highest-numbered version. Returns
// nil if the item has no versions.
func (s *ContentStore) LatestVersion(contentID uuid.UUID) (*models.ContentVersion, error) {
	v, err := scanVersion(s.db.QueryRow(`
		SELECT `+versionColumns+`
		FROM content_versions
		WHERE content_id = $1
		ORDER BY version_no DESC
		LIMIT 1
	`, contentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find latest version: %w", err)
	}
	return v, nil
}

// ListVersions returns an item's full version history, newest first.
func (s *ContentStore) ListVersions(contentID uuid.UUID) ([]*models.ContentVersion, error) {
	rows, err := s.db.Query(`
		SELECT `+versionColumns+`
		FROM content_versions
		WHERE content_id = $1
		ORDER BY version_no DESC
	`, contentID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []*models.ContentVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// UpdateStatus changes an item's editorial status.
func (s *ContentStore) UpdateStatus(id uuid.UUID, status models.ContentStatus) error {
	_, err := s.db.Exec(`
		UPDATE content_items SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update content status: %w", err)
	}
	return nil
}

// UpdateTopic changes an item's topic after a change-topic regeneration.
func (s *ContentStore) UpdateTopic(id uuid.UUID, topic string) error {
	_, err := s.db.Exec(`
		UPDATE content_items SET topic = $1 WHERE id = $2
	`, topic, id)
	if err != nil {
		return fmt.Errorf("update content topic: %w", err)
	}
	return nil
}
