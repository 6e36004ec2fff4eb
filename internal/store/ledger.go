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

const transactionColumns = `id, user_id, kind, amount, balance_after, note, created_at`

// LedgerStore records credit movements. Every balance change goes
// through Record so the transaction log and the balance cannot drift.
type LedgerStore struct {
	db *sql.DB
}

// NewLedgerStore creates a new LedgerStore backed by the given database.
func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func scanTransaction(scanner interface{ Scan(...any) error }) (*models.CreditTransaction, error) {
	t := &models.CreditTransaction{}
	err := scanner.Scan(&t.ID, &t.UserID, &t.Kind, &t.Amount, &t.BalanceAfter, &t.Note, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Record applies a credit movement and logs it, in one transaction.
// Debits larger than the balance clamp the balance at zero, but the
// logged amount is the requested amount, so the ledger shows what was
// charged even when the balance could not cover it.
func (s *LedgerStore) Record(userID uuid.UUID, kind models.TransactionKind, amount int, note string) (*models.CreditTransaction, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin ledger tx: %w", err)
	}
	defer tx.Rollback()

	entry, err := recordInTx(tx, userID, kind, amount, note)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ledger tx: %w", err)
	}
	return entry, nil
}

// recordInTx is the shared movement + log step, also used by stores
// that fold a debit into a larger transaction.
func recordInTx(tx *sql.Tx, userID uuid.UUID, kind models.TransactionKind, amount int, note string) (*models.CreditTransaction, error) {
	var balance int
	err := tx.QueryRow(`
		UPDATE users SET credits = GREATEST(0, credits + $1), updated_at = NOW()
		WHERE id = $2
		RETURNING credits
	`, amount, userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record credit movement: user %s not found", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("apply credit movement: %w", err)
	}

	entry, err := scanTransaction(tx.QueryRow(`
		INSERT INTO credit_transactions (user_id, kind, amount, balance_after, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+transactionColumns,
		userID, kind, amount, balance, note,
	))
	if err != nil {
		return nil, fmt.Errorf("log credit movement: %w", err)
	}
	return entry, nil
}

// ListByUser returns a user's credit history, newest first.
func (s *LedgerStore) ListByUser(userID uuid.UUID, limit int) ([]*models.CreditTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT `+transactionColumns+`
		FROM credit_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var entries []*models.CreditTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		entries = append(entries, t)
	}
	return entries, rows.Err()
}

// Balance returns the user's current credit balance.
func (s *LedgerStore) Balance(userID uuid.UUID) (int, error) {
	var balance int
	err := s.db.QueryRow(`SELECT credits FROM users WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("read balance: %w", err)
	}
	return balance, nil
}
