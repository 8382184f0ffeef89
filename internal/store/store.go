package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmvnavigator/dmvnav/internal/bank"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Schema is the layout of an external question bank database.
// Options are stored as a JSON array of strings.
const Schema = `CREATE TABLE IF NOT EXISTS questions (
	id          INTEGER PRIMARY KEY,
	category    TEXT    NOT NULL,
	question    TEXT    NOT NULL,
	options     TEXT    NOT NULL,
	correct     INTEGER NOT NULL,
	explanation TEXT    NOT NULL DEFAULT ''
)`

// Store is a read-only handle on a SQLite question bank.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at path. The file must already exist.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Questions reads every row of the questions table in id order.
func (s *Store) Questions(ctx context.Context) ([]bank.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, question, options, correct, explanation FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []bank.Question
	for rows.Next() {
		var (
			q       bank.Question
			options string
		)
		if err := rows.Scan(&q.ID, &q.Category, &q.Prompt, &options, &q.CorrectIndex, &q.Explanation); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("question %d: decode options: %w", q.ID, errors.Join(bank.ErrMalformed, err))
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return out, nil
}

// Bank reads the questions table and builds a validated bank.
func (s *Store) Bank(ctx context.Context) (*bank.Bank, error) {
	qs, err := s.Questions(ctx)
	if err != nil {
		return nil, err
	}
	return bank.New(qs)
}

// applyPragmas puts the connection in read-only mode.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
