// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/filmvote/models"
)

const existingVoteQuery = `
	SELECT v.id, v.user_id, v.film_id, v.round_id, v.seen, v.created_at, f.title
	FROM vote v
	JOIN film f ON f.id = v.film_id
	WHERE v.user_id = $1 AND v.round_id = $2
`

// CastVote records a vote by userID for filmID in the active round.
// A user gets exactly one vote per round; a repeat attempt fails with
// *DuplicateVoteError carrying the original choice. The duplicate check
// runs inside the insert transaction, and the vote table's
// (user_id, round_id) UNIQUE constraint backs it, so two near-simultaneous
// taps cannot both land even if both pass the read.
func (l *Ledger) CastVote(userID, filmID int64, seen bool) (models.VoteReceipt, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Resolve the active round inside the transaction so a concurrent
	// round switch cannot slip between the lookup and the insert.
	var round models.Round
	err = tx.QueryRow(`
		SELECT id, name, is_active, created_at FROM round WHERE is_active = TRUE
	`).Scan(&round.ID, &round.Name, &round.IsActive, &round.CreatedAt)
	if err == sql.ErrNoRows {
		return models.VoteReceipt{}, ErrNoActiveRound
	}
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to query active round: %w", err)
	}

	var filmTitle string
	err = tx.QueryRow(`SELECT title FROM film WHERE id = $1`, filmID).Scan(&filmTitle)
	if err == sql.ErrNoRows {
		return models.VoteReceipt{}, ErrFilmNotFound
	}
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to query film: %w", err)
	}

	// Report the original choice when the user already voted.
	var existing models.Vote
	var existingTitle string
	err = tx.QueryRow(existingVoteQuery, userID, round.ID).Scan(
		&existing.ID, &existing.UserID, &existing.FilmID, &existing.RoundID,
		&existing.Seen, &existing.CreatedAt, &existingTitle,
	)
	if err == nil {
		return models.VoteReceipt{}, &DuplicateVoteError{
			FilmID:    existing.FilmID,
			FilmTitle: existingTitle,
			Seen:      existing.Seen,
		}
	}
	if err != sql.ErrNoRows {
		return models.VoteReceipt{}, fmt.Errorf("failed to query existing vote: %w", err)
	}

	vote := models.Vote{
		UserID:    userID,
		FilmID:    filmID,
		RoundID:   round.ID,
		Seen:      seen,
		CreatedAt: time.Now().UTC(),
	}
	err = tx.QueryRow(`
		INSERT INTO vote (user_id, film_id, round_id, seen, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, vote.UserID, vote.FilmID, vote.RoundID, vote.Seen, vote.CreatedAt).Scan(&vote.ID)

	if isUniqueViolation(err) {
		// A concurrent tap won the race between our check and insert.
		// The transaction is aborted at this point, so report the
		// committed vote from a fresh query.
		tx.Rollback()
		return models.VoteReceipt{}, l.duplicateFromCommitted(userID, round.ID)
	}
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	var tally models.VoteTally
	err = tx.QueryRow(`
		SELECT COALESCE(SUM(CASE WHEN seen THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN seen THEN 0 ELSE 1 END), 0)
		FROM vote
		WHERE film_id = $1 AND round_id = $2
	`, filmID, round.ID).Scan(&tally.Seen, &tally.Unseen)
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to tally votes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	slog.Info("vote recorded",
		"user_id", userID,
		"film_id", filmID,
		"round_id", round.ID,
		"seen", seen,
	)

	return models.VoteReceipt{
		Vote:      vote,
		FilmTitle: filmTitle,
		Round:     round,
		Tally:     tally,
	}, nil
}

func (l *Ledger) duplicateFromCommitted(userID, roundID int64) error {
	var v models.Vote
	var title string
	err := l.db.QueryRow(existingVoteQuery, userID, roundID).Scan(
		&v.ID, &v.UserID, &v.FilmID, &v.RoundID, &v.Seen, &v.CreatedAt, &title,
	)
	if err != nil {
		return fmt.Errorf("failed to query conflicting vote: %w", err)
	}
	return &DuplicateVoteError{FilmID: v.FilmID, FilmTitle: title, Seen: v.Seen}
}

// UserVote returns the vote userID cast in roundID, or nil when the
// user has not voted in that round.
func (l *Ledger) UserVote(userID, roundID int64) (*models.VoteRecord, error) {
	var rec models.VoteRecord
	err := l.db.QueryRow(existingVoteQuery, userID, roundID).Scan(
		&rec.Vote.ID, &rec.Vote.UserID, &rec.Vote.FilmID, &rec.Vote.RoundID,
		&rec.Vote.Seen, &rec.Vote.CreatedAt, &rec.FilmTitle,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user vote: %w", err)
	}

	return &rec, nil
}
