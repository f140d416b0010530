// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Filmvote API server.

Filmvote is a small group film-voting service: admins propose films,
everyone casts one vote per round on whether they have seen a film, and
weighted scores (seen = 0.5, not seen = 1.0) decide the winner.

# Starting the Server

The server runs on a local SQLite file out of the box:

	go run main.go -admin-salt "secret"

Settings come from a .env file, environment variables, or CLI flags:

	ADMIN_KEY_SALT=secret DATABASE_URL=film_voting.db go run main.go

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): Secret for the admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): SQLite file path or Postgres connection string
    (default: film_voting.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_USER_IDS (--admin-ids): Comma-separated user IDs treated as admins

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ledger: the voting core (films, rounds, votes, weighted results)
  - handlers: HTTP request handlers (films, voting, rounds, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Caller identity and admin capability checks
  - db: Schema creation per database type
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
