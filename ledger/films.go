// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/filmvote/models"
)

// AddFilm registers a new film. Titles are compared case-sensitively:
// the UNIQUE column uses the default binary collation, so "Alien" and
// "alien" are distinct films.
func (l *Ledger) AddFilm(title string) (models.Film, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Film{}, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}

	var film models.Film
	film.Title = title
	err := l.db.QueryRow(`
		INSERT INTO film (title) VALUES ($1) RETURNING id
	`, title).Scan(&film.ID)

	if isUniqueViolation(err) {
		return models.Film{}, ErrDuplicateFilm
	}
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to insert film: %w", err)
	}

	return film, nil
}

// DeleteFilm removes the film with the exactly matching title. Votes
// referencing the film are removed with it in every round (the film_id
// foreign key cascades), so results never show a film that no longer
// exists.
func (l *Ledger) DeleteFilm(title string) error {
	res, err := l.db.Exec(`DELETE FROM film WHERE title = $1`, title)
	if err != nil {
		return fmt.Errorf("failed to delete film: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrFilmNotFound
	}

	return nil
}

// ListFilms returns every registered film in insertion order.
func (l *Ledger) ListFilms() ([]models.Film, error) {
	rows, err := l.db.Query(`SELECT id, title FROM film ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	defer rows.Close()

	films := []models.Film{}
	for rows.Next() {
		var f models.Film
		if err := rows.Scan(&f.ID, &f.Title); err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		films = append(films, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read films: %w", err)
	}

	return films, nil
}

// FilmByID looks up a single film.
func (l *Ledger) FilmByID(id int64) (models.Film, error) {
	var f models.Film
	err := l.db.QueryRow(`SELECT id, title FROM film WHERE id = $1`, id).Scan(&f.ID, &f.Title)
	if err == sql.ErrNoRows {
		return models.Film{}, ErrFilmNotFound
	}
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to query film: %w", err)
	}

	return f, nil
}
