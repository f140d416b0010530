// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Supported database types.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// DriverName maps a database type to its database/sql driver name.
func DriverName(databaseType string) (string, error) {
	switch databaseType {
	case TypeSQLite:
		return "sqlite", nil
	case TypePostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// DSN returns the connection string for the given database type.
// For SQLite it appends the pragmas the ledger depends on: foreign keys
// for the vote→film cascade and a busy timeout so concurrent writers
// wait instead of failing with "database is locked".
func DSN(databaseURL, databaseType string) string {
	if databaseType != TypeSQLite {
		return databaseURL
	}
	sep := "?"
	if strings.Contains(databaseURL, "?") {
		sep = "&"
	}
	return databaseURL + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	schema, ok := schemas[databaseType]
	if !ok {
		return fmt.Errorf("unsupported database type %q", databaseType)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

var schemas = map[string]string{
	TypeSQLite:   sqliteSchema,
	TypePostgres: postgresSchema,
}

const sqliteSchema = `
-- Films
CREATE TABLE IF NOT EXISTS film (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL UNIQUE
);

-- Rounds
CREATE TABLE IF NOT EXISTS round (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_round_is_active ON round(is_active);

-- Votes: one per (user, round); deleting a film removes its votes
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    film_id INTEGER NOT NULL REFERENCES film(id) ON DELETE CASCADE,
    round_id INTEGER NOT NULL REFERENCES round(id),
    seen BOOLEAN NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, round_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_round_id ON vote(round_id);
CREATE INDEX IF NOT EXISTS idx_vote_film_id ON vote(film_id);
`

const postgresSchema = `
-- Films
CREATE TABLE IF NOT EXISTS film (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL UNIQUE
);

-- Rounds
CREATE TABLE IF NOT EXISTS round (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_round_is_active ON round(is_active);

-- Votes: one per (user, round); deleting a film removes its votes
CREATE TABLE IF NOT EXISTS vote (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    film_id BIGINT NOT NULL REFERENCES film(id) ON DELETE CASCADE,
    round_id BIGINT NOT NULL REFERENCES round(id),
    seen BOOLEAN NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, round_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_round_id ON vote(round_id);
CREATE INDEX IF NOT EXISTS idx_vote_film_id ON vote(film_id);
`
