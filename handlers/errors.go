// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/filmvote/ledger"
	"github.com/danielhkuo/filmvote/middleware"
	"github.com/danielhkuo/filmvote/models"
)

// writeLedgerError maps core error kinds onto HTTP statuses. Duplicate
// votes get their own body shape so the caller can render the original
// choice.
func writeLedgerError(w http.ResponseWriter, err error) {
	var dup *ledger.DuplicateVoteError
	switch {
	case errors.As(err, &dup):
		middleware.JSONResponse(w, http.StatusConflict, models.DuplicateVoteResponse{
			Error:     "You have already voted in this round",
			FilmID:    dup.FilmID,
			FilmTitle: dup.FilmTitle,
			Seen:      dup.Seen,
		})
	case errors.Is(err, ledger.ErrDuplicateFilm):
		middleware.ErrorResponse(w, http.StatusConflict, "Film already exists")
	case errors.Is(err, ledger.ErrFilmNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Film not found")
	case errors.Is(err, ledger.ErrRoundNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Round not found")
	case errors.Is(err, ledger.ErrNoActiveRound):
		middleware.ErrorResponse(w, http.StatusConflict, "No active round")
	case errors.Is(err, ledger.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("ledger operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
