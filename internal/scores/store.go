// Package scores keeps a local log of finished rounds and serves the best ones.
package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Entry is one finished round.
type Entry struct {
	SessionID  string    `json:"sessionId"`
	Root       string    `json:"root"`
	Score      int       `json:"score"`
	Words      int       `json:"words"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Store reads and writes the scores table.
type Store struct{ db *sql.DB }

// Open opens the database at path and applies migrations.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("scores: empty database path")
	}
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("scores: open: %w", err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("scores: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts a finished round. A zero FinishedAt means now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.FinishedAt.IsZero() {
		e.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores(session_id, root, score, words, finished_at) VALUES(?,?,?,?,?)`,
		e.SessionID, e.Root, e.Score, e.Words, e.FinishedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Best returns the highest scores, earliest first among ties.
func (s *Store) Best(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, root, score, words, finished_at
		 FROM scores
		 ORDER BY score DESC, finished_at ASC, id ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e        Entry
			finished string
		)
		if err := rows.Scan(&e.SessionID, &e.Root, &e.Score, &e.Words, &finished); err != nil {
			return nil, err
		}
		e.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, e)
	}
	return out, rows.Err()
}
