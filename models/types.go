package models

import "time"

// Request types

type AddFilmRequest struct {
	Title string `json:"title"`
}

// Seen is a pointer so a missing field can be told apart from false.
type CastVoteRequest struct {
	FilmID int64 `json:"film_id"`
	Seen   *bool `json:"seen"`
}

type StartRoundRequest struct {
	Name string `json:"name"`
}

// Response types

type FilmListResponse struct {
	Films []Film `json:"films"`
}

type AddFilmResponse struct {
	Film Film `json:"film"`
}

type DeleteFilmResponse struct {
	Message string `json:"message"`
}

type DuplicateVoteResponse struct {
	Error     string `json:"error"`
	FilmID    int64  `json:"film_id"`
	FilmTitle string `json:"film_title"`
	Seen      bool   `json:"seen"`
}

type RoundResponse struct {
	Round Round  `json:"round"`
	Age   string `json:"age"`
}

type MyVoteResponse struct {
	Round     Round  `json:"round"`
	Vote      Vote   `json:"vote"`
	FilmTitle string `json:"film_title"`
}

type ResultsResponse struct {
	Round     Round       `json:"round"`
	Results   []FilmScore `json:"results"`
	VoteCount int         `json:"vote_count"`
}

type WinnerResponse struct {
	Round  Round     `json:"round"`
	Winner FilmScore `json:"winner"`
}

// Domain types

type Film struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Round struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FilmID    int64     `json:"film_id"`
	RoundID   int64     `json:"round_id"`
	Seen      bool      `json:"seen"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteTally counts seen and unseen votes for one film within a round.
type VoteTally struct {
	Seen   int `json:"seen"`
	Unseen int `json:"unseen"`
}

// FilmScore is one row of a round's results: the film's weighted score
// and how many votes produced it.
type FilmScore struct {
	FilmID    int64   `json:"film_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	VoteCount int     `json:"vote_count"`
}

// VoteReceipt is returned after a vote is recorded. Tally covers the
// chosen film in the round the vote landed in.
type VoteReceipt struct {
	Vote      Vote      `json:"vote"`
	FilmTitle string    `json:"film_title"`
	Round     Round     `json:"round"`
	Tally     VoteTally `json:"tally"`
}

// VoteRecord pairs a stored vote with its film title.
type VoteRecord struct {
	Vote      Vote   `json:"vote"`
	FilmTitle string `json:"film_title"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
