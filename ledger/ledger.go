// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"strings"
)

// Ledger is the voting core. It records votes, manages rounds and the
// film registry, and computes per-round scores. All methods speak plain
// records and typed errors so any front end can bind to them.
type Ledger struct {
	db *sql.DB
}

func New(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// isUniqueViolation reports whether err is a uniqueness-constraint
// violation from either supported driver. Neither modernc sqlite nor
// lib/pq exports a stable error type for this, so match on message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
