// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/danielhkuo/filmvote/models"
	"github.com/danielhkuo/filmvote/testutil"
)

// TestConcurrentDoubleVote fires parallel casts from the same user. A
// double-tapped submit button must land exactly one vote; every other
// attempt gets the conflict response.
func TestConcurrentDoubleVote(t *testing.T) {
	db, handler := newVotingHandler(t)
	defer db.Close()

	filmID := testutil.AddTestFilm(t, db, "Alien")
	roundID := testutil.StartTestRound(t, db, "Round 1")

	const attempts = 10

	var wg sync.WaitGroup
	statuses := make([]int, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/votes",
				models.CastVoteRequest{FilmID: filmID, Seen: boolPtr(idx%2 == 0)},
				map[string]string{"X-User-ID": "900"})
			w := httptest.NewRecorder()

			handler.CastVote(w, req)
			statuses[idx] = w.Code
		}(i)
	}
	wg.Wait()

	created, conflicts := 0, 0
	for _, code := range statuses {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		default:
			t.Errorf("Unexpected status %d", code)
		}
	}

	if created != 1 {
		t.Errorf("Expected exactly 1 recorded vote, got %d", created)
	}
	if conflicts != attempts-1 {
		t.Errorf("Expected %d conflicts, got %d", attempts-1, conflicts)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE user_id = 900 AND round_id = $1", roundID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 vote row, got %d", count)
	}
}

// TestConcurrentDistinctVoters runs parallel casts from different users;
// all of them must succeed.
func TestConcurrentDistinctVoters(t *testing.T) {
	db, handler := newVotingHandler(t)
	defer db.Close()

	filmID := testutil.AddTestFilm(t, db, "Alien")
	roundID := testutil.StartTestRound(t, db, "Round 1")

	const voters = 10

	var wg sync.WaitGroup
	statuses := make([]int, voters)

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/votes",
				models.CastVoteRequest{FilmID: filmID, Seen: boolPtr(idx%2 == 0)},
				map[string]string{"X-User-ID": strconv.Itoa(1000 + idx)})
			w := httptest.NewRecorder()

			handler.CastVote(w, req)
			statuses[idx] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range statuses {
		if code != http.StatusCreated {
			t.Errorf("Voter %d: expected 201, got %d", 1000+i, code)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE round_id = $1", roundID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != voters {
		t.Errorf("Expected %d vote rows, got %d", voters, count)
	}
}
