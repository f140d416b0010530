package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/filmvote/ledger"
	"github.com/danielhkuo/filmvote/models"
	"github.com/danielhkuo/filmvote/testutil"
)

func newResultsHandler(t *testing.T) (*sql.DB, *ResultsHandler) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	return db, NewResultsHandler(ledger.New(db))
}

// seedScoredRound records two seen votes for Alien (1.0) and one unseen
// vote for Heat (1.0 as well, but Alien has more votes; switch one Alien
// vote to unseen and it pulls ahead at 1.5).
func seedScoredRound(t *testing.T, db *sql.DB) (roundID, alienID, heatID int64) {
	t.Helper()

	alienID = testutil.AddTestFilm(t, db, "Alien")
	heatID = testutil.AddTestFilm(t, db, "Heat")
	roundID = testutil.StartTestRound(t, db, "Round 1")

	testutil.CastTestVote(t, db, 1, alienID, roundID, true)
	testutil.CastTestVote(t, db, 2, alienID, roundID, false)
	testutil.CastTestVote(t, db, 3, heatID, roundID, false)
	return roundID, alienID, heatID
}

func TestGetResults(t *testing.T) {
	db, handler := newResultsHandler(t)
	defer db.Close()

	roundID, alienID, heatID := seedScoredRound(t, db)

	req := testutil.MakeRequest("GET", "/rounds/"+strconv.FormatInt(roundID, 10)+"/results", nil, nil)
	req.SetPathValue("id", strconv.FormatInt(roundID, 10))
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 scored films, got %d", len(resp.Results))
	}
	if resp.Results[0].FilmID != alienID || resp.Results[0].Score != 1.5 {
		t.Errorf("Expected Alien at 1.5 first, got %+v", resp.Results[0])
	}
	if resp.Results[1].FilmID != heatID || resp.Results[1].Score != 1.0 {
		t.Errorf("Expected Heat at 1.0 second, got %+v", resp.Results[1])
	}
	if resp.VoteCount != 3 {
		t.Errorf("Expected vote count 3, got %d", resp.VoteCount)
	}
}

func TestGetResultsBadRoundID(t *testing.T) {
	db, handler := newResultsHandler(t)
	defer db.Close()

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"not a number", "abc", http.StatusBadRequest},
		{"unknown round", "9999", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/rounds/"+tt.id+"/results", nil, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestGetWinner(t *testing.T) {
	db, handler := newResultsHandler(t)
	defer db.Close()

	roundID, alienID, _ := seedScoredRound(t, db)

	req := testutil.MakeRequest("GET", "/rounds/"+strconv.FormatInt(roundID, 10)+"/winner", nil, nil)
	req.SetPathValue("id", strconv.FormatInt(roundID, 10))
	w := httptest.NewRecorder()

	handler.GetWinner(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.WinnerResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Winner.FilmID != alienID {
		t.Errorf("Expected Alien to win, got %+v", resp.Winner)
	}
	if resp.Round.ID != roundID {
		t.Errorf("Expected round %d, got %d", roundID, resp.Round.ID)
	}
}

func TestGetWinnerNoVotes(t *testing.T) {
	db, handler := newResultsHandler(t)
	defer db.Close()

	testutil.AddTestFilm(t, db, "Alien")
	roundID := testutil.StartTestRound(t, db, "Round 1")

	req := testutil.MakeRequest("GET", "/rounds/"+strconv.FormatInt(roundID, 10)+"/winner", nil, nil)
	req.SetPathValue("id", strconv.FormatInt(roundID, 10))
	w := httptest.NewRecorder()

	handler.GetWinner(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestActiveResults(t *testing.T) {
	db, handler := newResultsHandler(t)
	defer db.Close()

	// No active round
	w := httptest.NewRecorder()
	handler.ActiveResults(w, testutil.MakeRequest("GET", "/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	roundID, _, _ := seedScoredRound(t, db)

	w = httptest.NewRecorder()
	handler.ActiveResults(w, testutil.MakeRequest("GET", "/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Round.ID != roundID {
		t.Errorf("Expected active round %d, got %d", roundID, resp.Round.ID)
	}
}

func TestActiveResultsEmptyRound(t *testing.T) {
	db, handler := newResultsHandler(t)
	defer db.Close()

	testutil.StartTestRound(t, db, "Round 1")

	w := httptest.NewRecorder()
	handler.ActiveResults(w, testutil.MakeRequest("GET", "/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Errorf("Expected empty results, got %+v", resp.Results)
	}
	if resp.VoteCount != 0 {
		t.Errorf("Expected vote count 0, got %d", resp.VoteCount)
	}
}

func TestActiveWinner(t *testing.T) {
	db, handler := newResultsHandler(t)
	defer db.Close()

	_, alienID, _ := seedScoredRound(t, db)

	w := httptest.NewRecorder()
	handler.ActiveWinner(w, testutil.MakeRequest("GET", "/winner", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.WinnerResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Winner.FilmID != alienID {
		t.Errorf("Expected Alien to win, got %+v", resp.Winner)
	}
}
