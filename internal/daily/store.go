// internal/daily/store.go
//
// SQLite-backed pinning of date → word assignments. The first word computed
// for a date is pinned; later requests serve the pinned row even if the
// answer list or salt has changed since. UNIQUE(date) makes pinning
// idempotent under concurrent requests.
package daily

import (
	"context"
	"database/sql"
	"errors"
)

// Assignment is one pinned daily puzzle.
type Assignment struct {
	Date      string `json:"date"`
	Word      string `json:"solution"`
	WordIndex int    `json:"wordIndex"`
}

// Store persists assignments in SQLite.
type Store struct{ db *sql.DB }

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Migrate creates the puzzles table if needed. Idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS puzzles (
			date       TEXT PRIMARY KEY,
			word       TEXT NOT NULL,
			word_index INTEGER NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`)
	return err
}

// Pinned returns the assignment for date, if one exists.
func (s *Store) Pinned(ctx context.Context, date string) (Assignment, bool, error) {
	var a Assignment
	err := s.db.QueryRowContext(ctx,
		`SELECT date, word, word_index FROM puzzles WHERE date=?`, date,
	).Scan(&a.Date, &a.Word, &a.WordIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return Assignment{}, false, nil
	}
	if err != nil {
		return Assignment{}, false, err
	}
	return a, true, nil
}

// Pin records an assignment for its date. If the date is already pinned the
// existing row wins and no error is returned.
func (s *Store) Pin(ctx context.Context, a Assignment) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO puzzles (date, word, word_index) VALUES (?,?,?)`,
		a.Date, a.Word, a.WordIndex,
	)
	return err
}
