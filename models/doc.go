// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddFilmRequest: title
  - CastVoteRequest: film_id, seen
  - StartRoundRequest: name

# Response Types

Types for JSON responses:

  - FilmListResponse: films
  - AddFilmResponse: film
  - DeleteFilmResponse: message
  - DuplicateVoteResponse: error, film_id, film_title, seen
  - RoundResponse: round, age
  - MyVoteResponse: round, vote, film_title
  - ResultsResponse: round, results, vote_count
  - WinnerResponse: round, winner
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Film: registered film, unique by title
  - Round: voting period; at most one active
  - Vote: immutable (user, film, round, seen) record
  - VoteTally: seen/unseen counts for one film in a round
  - FilmScore: weighted score row in a round's results
  - VoteReceipt: successful CastVote outcome
  - VoteRecord: stored vote plus its film title

All types are plain records (no framework types) so any front end can
bind to them.
*/
package models
