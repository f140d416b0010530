// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and connection strings.

# Schema Creation

CreateSchema initializes all required tables for the configured
database type:

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. SQLite (modernc.org/sqlite) is the default, file-based store;
Postgres (lib/pq) is supported via DATABASE_TYPE=postgres.

# Tables

  - film: Proposed films, unique by exact title
  - round: Voting rounds; at most one has is_active = TRUE
  - vote: One vote per (user_id, round_id), UNIQUE-constrained

# Relationships

	film 1──* vote (ON DELETE CASCADE)
	round 1──* vote

Deleting a film removes its votes; rounds are never deleted.

# Connection Strings

DSN appends the pragmas SQLite needs (foreign_keys on, busy_timeout)
and passes Postgres URLs through untouched:

	conn, err := sql.Open(driver, db.DSN(cfg.DatabaseURL, cfg.DatabaseType))

# Indexes

Performance indexes on:

  - film.title (unique)
  - round.is_active
  - vote.(user_id, round_id) (unique)
  - vote.round_id
  - vote.film_id
*/
package db
