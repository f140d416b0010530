// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/filmvote/auth"
	"github.com/danielhkuo/filmvote/cliparse"
	"github.com/danielhkuo/filmvote/handlers"
	"github.com/danielhkuo/filmvote/ledger"
	"github.com/danielhkuo/filmvote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	adminIDs, err := auth.ParseAdminIDs(cfg.AdminUserIDs)
	if err != nil {
		return nil, err
	}
	isAdmin := auth.NewAdminChecker(adminIDs, cfg.AdminKeySalt)

	// Initialize handlers around the shared voting core
	lg := ledger.New(db)
	filmHandler := handlers.NewFilmHandler(lg, isAdmin)
	votingHandler := handlers.NewVotingHandler(lg)
	roundHandler := handlers.NewRoundHandler(lg, isAdmin)
	resultsHandler := handlers.NewResultsHandler(lg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Film registry (add/delete are admin operations)
	mux.HandleFunc("GET /films", middleware.WithLogging(filmHandler.ListFilms))
	mux.HandleFunc("POST /films", middleware.WithLogging(filmHandler.AddFilm))
	mux.HandleFunc("DELETE /films/{title}", middleware.WithLogging(filmHandler.DeleteFilm))

	// Voting
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /votes/me", middleware.WithLogging(votingHandler.MyVote))

	// Rounds (starting one is an admin operation)
	mux.HandleFunc("POST /rounds", middleware.WithLogging(roundHandler.StartRound))
	mux.HandleFunc("GET /rounds/active", middleware.WithLogging(roundHandler.ActiveRound))

	// Results
	mux.HandleFunc("GET /rounds/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /rounds/{id}/winner", middleware.WithLogging(resultsHandler.GetWinner))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.ActiveResults))
	mux.HandleFunc("GET /winner", middleware.WithLogging(resultsHandler.ActiveWinner))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("filmvote API v1"))
	})

	return mux, nil
}
