// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/filmvote/cliparse"
	"github.com/danielhkuo/filmvote/db"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir
// with the full schema. The file (and everything in it) is cleaned up
// with the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "filmvote_test.db")
	conn, err := sql.Open("sqlite", db.DSN(path, db.TypeSQLite))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Deferred-transaction lock upgrades deadlock under concurrent
	// writers on SQLite; a single connection serializes them.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. User 7 is the
// configured admin.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "filmvote_test.db",
		DatabaseType: db.TypeSQLite,
		AdminKeySalt: "test-admin-salt",
		AdminUserIDs: "7",
	}
}

// AddTestFilm inserts a film and returns its ID
func AddTestFilm(t *testing.T, conn *sql.DB, title string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`INSERT INTO film (title) VALUES ($1) RETURNING id`, title).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test film: %v", err)
	}

	return id
}

// StartTestRound deactivates all rounds and inserts a new active one
func StartTestRound(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	if _, err := conn.Exec(`UPDATE round SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
		t.Fatalf("Failed to deactivate rounds: %v", err)
	}

	var id int64
	err := conn.QueryRow(`
		INSERT INTO round (name, is_active, created_at)
		VALUES ($1, TRUE, $2)
		RETURNING id
	`, name, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test round: %v", err)
	}

	return id
}

// CastTestVote inserts a vote row directly
func CastTestVote(t *testing.T, conn *sql.DB, userID, filmID, roundID int64, seen bool) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (user_id, film_id, round_id, seen, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, filmID, roundID, seen, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
