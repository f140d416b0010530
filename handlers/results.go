// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/filmvote/ledger"
	"github.com/danielhkuo/filmvote/middleware"
	"github.com/danielhkuo/filmvote/models"
)

type ResultsHandler struct {
	ledger *ledger.Ledger
}

func NewResultsHandler(lg *ledger.Ledger) *ResultsHandler {
	return &ResultsHandler{ledger: lg}
}

// GetResults handles GET /rounds/{id}/results
// Scores are ordered highest first; films without votes in the round
// are excluded.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	roundID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "round id must be an integer")
		return
	}

	h.writeResults(w, roundID)
}

// GetWinner handles GET /rounds/{id}/winner
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	roundID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "round id must be an integer")
		return
	}

	h.writeWinner(w, roundID)
}

// ActiveResults handles GET /results (shortcut for the active round)
func (h *ResultsHandler) ActiveResults(w http.ResponseWriter, r *http.Request) {
	round, err := h.ledger.ActiveRound()
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	h.writeResults(w, round.ID)
}

// ActiveWinner handles GET /winner (shortcut for the active round)
func (h *ResultsHandler) ActiveWinner(w http.ResponseWriter, r *http.Request) {
	round, err := h.ledger.ActiveRound()
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	h.writeWinner(w, round.ID)
}

func (h *ResultsHandler) writeResults(w http.ResponseWriter, roundID int64) {
	round, err := h.ledger.RoundByID(roundID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	results, err := h.ledger.ComputeResults(roundID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	voteCount := 0
	for _, fs := range results {
		voteCount += fs.VoteCount
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Round:     round,
		Results:   results,
		VoteCount: voteCount,
	})
}

func (h *ResultsHandler) writeWinner(w http.ResponseWriter, roundID int64) {
	round, err := h.ledger.RoundByID(roundID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	winner, err := h.ledger.Winner(roundID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	if winner == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No votes recorded for this round")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		Round:  round,
		Winner: *winner,
	})
}
