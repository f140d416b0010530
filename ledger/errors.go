// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateFilm = errors.New("film already exists")
	ErrFilmNotFound  = errors.New("film not found")
	ErrRoundNotFound = errors.New("round not found")
	ErrNoActiveRound = errors.New("no active round")
	ErrInvalidInput  = errors.New("invalid input")
)

// DuplicateVoteError is returned when a user votes a second time in the
// same round. It carries the original choice so the caller can render
// "you already voted for X".
type DuplicateVoteError struct {
	FilmID    int64
	FilmTitle string
	Seen      bool
}

func (e *DuplicateVoteError) Error() string {
	return fmt.Sprintf("already voted for %q (seen=%t) in this round", e.FilmTitle, e.Seen)
}
