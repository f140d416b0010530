// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Filmvote API.

# Handler Types

Each handler is a struct built around the shared voting core:

  - FilmHandler: Film registry (list, add, delete)
  - VotingHandler: Vote casting and the caller's own vote
  - RoundHandler: Round switching and active-round info
  - ResultsHandler: Weighted scores and winners

Handlers are created via constructor functions that accept the ledger
and, for admin operations, the injected admin predicate:

	filmHandler := handlers.NewFilmHandler(lg, isAdmin)

# Film Registry

	GET    /films         → ListFilms
	POST   /films         → AddFilm (admin)
	DELETE /films/{title} → DeleteFilm (admin; removes the film's votes)

Admin requests carry X-Admin-Key, or an X-User-ID in the allow-set.

# Voting Flow

Voters identify themselves with the X-User-ID header:

	POST /votes    → CastVote (one per user per round)
	GET  /votes/me → MyVote (the caller's vote in the active round)

A second vote in the same round answers 409 with the original choice.

# Rounds and Results

	POST /rounds              → StartRound (admin; resets eligibility)
	GET  /rounds/active       → ActiveRound
	GET  /rounds/{id}/results → GetResults
	GET  /rounds/{id}/winner  → GetWinner
	GET  /results, /winner    → active-round shortcuts

Scores are computed by the ledger: 0.5 per "seen", 1.0 per "not seen",
highest first, ordered deterministically.

# Error Mapping

writeLedgerError translates core error kinds: duplicates → 409,
lookup misses → 404, no active round → 409, invalid input → 400,
anything else → 500.
*/
package handlers
