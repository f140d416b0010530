// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/filmvote/auth"
	"github.com/danielhkuo/filmvote/ledger"
	"github.com/danielhkuo/filmvote/middleware"
	"github.com/danielhkuo/filmvote/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
}

func NewVotingHandler(lg *ledger.Ledger) *VotingHandler {
	return &VotingHandler{ledger: lg}
}

// CastVote handles POST /votes
// The caller identity comes from the X-User-ID header; one vote per
// user per round, enforced by the ledger.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-User-ID header required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.FilmID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "film_id is required")
		return
	}
	if req.Seen == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "seen is required")
		return
	}

	receipt, err := h.ledger.CastVote(userID, req.FilmID, *req.Seen)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, receipt)
}

// MyVote handles GET /votes/me
// Returns the caller's vote in the active round, or 404 if they have
// not voted yet.
func (h *VotingHandler) MyVote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-User-ID header required")
		return
	}

	round, err := h.ledger.ActiveRound()
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	rec, err := h.ledger.UserVote(userID, round.ID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	if rec == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No vote recorded in the active round")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVoteResponse{
		Round:     round,
		Vote:      rec.Vote,
		FilmTitle: rec.FilmTitle,
	})
}
