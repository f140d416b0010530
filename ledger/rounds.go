// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/filmvote/models"
)

// StartNewRound deactivates the current active round (if any) and
// inserts a new active one. The two statements run in one transaction
// so a concurrently cast vote lands either in the old round or the new
// one, never in a half-switched state, and the "at most one active
// round" invariant holds even with several server instances sharing
// the store.
func (l *Ledger) StartNewRound(name string) (models.Round, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Round{}, fmt.Errorf("%w: round name must not be empty", ErrInvalidInput)
	}

	tx, err := l.db.Begin()
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE round SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
		return models.Round{}, fmt.Errorf("failed to deactivate rounds: %w", err)
	}

	round := models.Round{
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	err = tx.QueryRow(`
		INSERT INTO round (name, is_active, created_at)
		VALUES ($1, TRUE, $2)
		RETURNING id
	`, round.Name, round.CreatedAt).Scan(&round.ID)
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to insert round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Round{}, fmt.Errorf("failed to commit round switch: %w", err)
	}

	slog.Info("round started", "round_id", round.ID, "name", round.Name)

	return round, nil
}

// ActiveRound returns the single active round, or ErrNoActiveRound.
func (l *Ledger) ActiveRound() (models.Round, error) {
	var r models.Round
	err := l.db.QueryRow(`
		SELECT id, name, is_active, created_at FROM round WHERE is_active = TRUE
	`).Scan(&r.ID, &r.Name, &r.IsActive, &r.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Round{}, ErrNoActiveRound
	}
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to query active round: %w", err)
	}

	return r, nil
}

// RoundByID looks up a round, active or not.
func (l *Ledger) RoundByID(id int64) (models.Round, error) {
	var r models.Round
	err := l.db.QueryRow(`
		SELECT id, name, is_active, created_at FROM round WHERE id = $1
	`, id).Scan(&r.ID, &r.Name, &r.IsActive, &r.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Round{}, ErrRoundNotFound
	}
	if err != nil {
		return models.Round{}, fmt.Errorf("failed to query round: %w", err)
	}

	return r, nil
}

// EnsureActiveRound seeds a default "Round 1" when the store has no
// active round, so a fresh database accepts votes immediately.
func (l *Ledger) EnsureActiveRound() (models.Round, error) {
	round, err := l.ActiveRound()
	if err == ErrNoActiveRound {
		return l.StartNewRound("Round 1")
	}
	return round, err
}
