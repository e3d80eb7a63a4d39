package position

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

const schema = `CREATE TABLE IF NOT EXISTS positions (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
)`

// SQLite stores positions in a single-table sqlite database
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenSQLite opens (creating if needed) the database at path
func OpenSQLite(path string, log zerolog.Logger) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create positions table: %w", err)
	}

	return &SQLite{db: db, log: log}, nil
}

// Get returns the stored value. A read error is logged and reported as absent.
func (s *SQLite) Get(key string) (int, bool) {
	var v int
	err := s.db.QueryRow(`SELECT value FROM positions WHERE key = ?`, key).Scan(&v)
	switch {
	case err == nil:
		return v, true
	case errors.Is(err, sql.ErrNoRows):
		return 0, false
	default:
		s.log.Error().Err(err).Str("key", key).Msg("failed to read position")
		return 0, false
	}
}

// Set upserts the value for key
func (s *SQLite) Set(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO positions (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to store position %q: %w", key, err)
	}
	return nil
}

// Close closes the database
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("failed to close state database: %w", err)
	}
	return nil
}
