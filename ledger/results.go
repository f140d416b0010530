// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"

	"github.com/danielhkuo/filmvote/models"
)

// Score weights. Both are exact binary fractions, so a film's score is
// exactly 0.5*seen + 1.0*unseen with no floating-point drift.
const (
	WeightSeen   = 0.5
	WeightUnseen = 1.0
)

// ComputeResults returns the weighted score of every film that received
// at least one vote in the round, highest score first, ties broken by
// film id ascending. Films without votes in the round are excluded.
// The result depends only on the round's accumulated vote set, not on
// insertion order.
func (l *Ledger) ComputeResults(roundID int64) ([]models.FilmScore, error) {
	if _, err := l.RoundByID(roundID); err != nil {
		return nil, err
	}

	rows, err := l.db.Query(`
		SELECT f.id, f.title,
		       SUM(CASE WHEN v.seen THEN 0.5 ELSE 1.0 END) AS total_score,
		       COUNT(*) AS vote_count
		FROM vote v
		JOIN film f ON f.id = v.film_id
		WHERE v.round_id = $1
		GROUP BY f.id, f.title
		ORDER BY total_score DESC, f.id ASC
	`, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []models.FilmScore{}
	for rows.Next() {
		var fs models.FilmScore
		if err := rows.Scan(&fs.FilmID, &fs.Title, &fs.Score, &fs.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	return results, nil
}

// Winner returns the top-scoring film of the round, or nil when the
// round has no votes.
func (l *Ledger) Winner(roundID int64) (*models.FilmScore, error) {
	results, err := l.ComputeResults(roundID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &results[0], nil
}
