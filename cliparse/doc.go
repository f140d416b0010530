// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or Postgres connection string
    (default: film_voting.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - AdminUserIDs: Comma-separated admin user IDs (optional)

# CLI Flags

	-p           Server port
	-d           Database URL or SQLite file path
	-t           Database type
	-admin-salt  Admin key salt
	-admin-ids   Admin user IDs

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → -admin-salt
	ADMIN_USER_IDS → -admin-ids

CLI flags take precedence over environment variables. main loads a
.env file (via godotenv) before parsing, so a local .env works too.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_KEY_SALT must be provided
  - DATABASE_URL must be provided when DATABASE_TYPE is postgres
*/
package cliparse
