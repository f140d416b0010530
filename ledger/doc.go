// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the voting core: the film registry, voting
rounds, the one-vote-per-user-per-round ledger, and weighted results.

All operations take and return plain records from the models package,
never HTTP or framework types, so any front end (chat bot, CLI, web
form) can bind to them. The ledger performs no authorization; admin
capability is the calling layer's concern.

# Construction

	lg := ledger.New(dbConn)

# Films

	film, err := lg.AddFilm("Alien")      // ErrDuplicateFilm on exact-title repeat
	films, err := lg.ListFilms()          // insertion order
	err = lg.DeleteFilm("Alien")          // cascades to the film's votes

Title matching is case-sensitive: "Alien" and "alien" are two films.

# Rounds

	round, err := lg.StartNewRound("Round 2")
	round, err := lg.ActiveRound()

At most one round is active at a time. StartNewRound deactivates the
rest in the same transaction that inserts the new round.

# Voting

	receipt, err := lg.CastVote(userID, filmID, seen)

One vote per (user, round), backed by a database UNIQUE constraint so a
double-tap cannot slip two votes past a read-then-write check. A repeat
attempt fails with *DuplicateVoteError carrying the original choice.

# Results

	scores, err := lg.ComputeResults(roundID)
	top, err := lg.Winner(roundID)

Score = 0.5 per "seen" vote + 1.0 per "not seen" vote. Results list
only films with at least one vote in the round, ordered score
descending, ties broken by film id ascending.

# Errors

Recoverable conditions are sentinel errors (ErrDuplicateFilm,
ErrFilmNotFound, ErrRoundNotFound, ErrNoActiveRound, ErrInvalidInput)
or *DuplicateVoteError; match with errors.Is / errors.As.
*/
package ledger
