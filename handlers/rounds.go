// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/filmvote/auth"
	"github.com/danielhkuo/filmvote/ledger"
	"github.com/danielhkuo/filmvote/middleware"
	"github.com/danielhkuo/filmvote/models"
)

type RoundHandler struct {
	ledger  *ledger.Ledger
	isAdmin auth.AdminFunc
}

func NewRoundHandler(lg *ledger.Ledger, isAdmin auth.AdminFunc) *RoundHandler {
	return &RoundHandler{ledger: lg, isAdmin: isAdmin}
}

// StartRound handles POST /rounds (admin only)
// Deactivates the current round and opens a new one; everyone may vote
// again.
func (h *RoundHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	if !h.isAdmin(r) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only admins can start rounds")
		return
	}

	var req models.StartRoundRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	round, err := h.ledger.StartNewRound(req.Name)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	slog.Info("round switched", "round_id", round.ID, "name", round.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RoundResponse{
		Round: round,
		Age:   humanize.Time(round.CreatedAt),
	})
}

// ActiveRound handles GET /rounds/active
func (h *RoundHandler) ActiveRound(w http.ResponseWriter, r *http.Request) {
	round, err := h.ledger.ActiveRound()
	if err == ledger.ErrNoActiveRound {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active round")
		return
	}
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RoundResponse{
		Round: round,
		Age:   humanize.Time(round.CreatedAt),
	})
}
