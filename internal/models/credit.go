// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies ledger entries by the action that caused them.
type TransactionKind string

const (
	KindTopUp      TransactionKind = "topup"
	KindGeneration TransactionKind = "generation"
	KindImprove    TransactionKind = "improve"
	KindStyle      TransactionKind = "style"
)

// CreditTransaction is one immutable ledger entry. Amount is the signed
// delta as requested by the caller; BalanceAfter is the running balance
// recorded at transaction time, not recomputed later. When the
// zero-floor clamp triggers, Amount can differ from the actual balance
// delta; see the ledger store for details.
type CreditTransaction struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Kind         TransactionKind `json:"kind"`
	Amount       int             `json:"amount"`
	BalanceAfter int             `json:"balance_after"`
	Note         string          `json:"note"`
	CreatedAt    time.Time       `json:"created_at"`
}
