// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/filmvote/auth"
	"github.com/danielhkuo/filmvote/ledger"
	"github.com/danielhkuo/filmvote/middleware"
	"github.com/danielhkuo/filmvote/models"
)

type FilmHandler struct {
	ledger  *ledger.Ledger
	isAdmin auth.AdminFunc
}

func NewFilmHandler(lg *ledger.Ledger, isAdmin auth.AdminFunc) *FilmHandler {
	return &FilmHandler{ledger: lg, isAdmin: isAdmin}
}

// ListFilms handles GET /films
func (h *FilmHandler) ListFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.ledger.ListFilms()
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FilmListResponse{Films: films})
}

// AddFilm handles POST /films (admin only)
func (h *FilmHandler) AddFilm(w http.ResponseWriter, r *http.Request) {
	if !h.isAdmin(r) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only admins can add films")
		return
	}

	var req models.AddFilmRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	film, err := h.ledger.AddFilm(req.Title)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	slog.Info("film added", "film_id", film.ID, "title", film.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.AddFilmResponse{Film: film})
}

// DeleteFilm handles DELETE /films/{title} (admin only)
// Deleting a film also removes its votes in every round.
func (h *FilmHandler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	if !h.isAdmin(r) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only admins can delete films")
		return
	}

	title := r.PathValue("title")
	if title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	if err := h.ledger.DeleteFilm(title); err != nil {
		writeLedgerError(w, err)
		return
	}

	slog.Info("film deleted", "title", title)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteFilmResponse{
		Message: "Film '" + title + "' deleted",
	})
}
