// Package position persists the last-viewed slide index per deck in a
// small SQLite database.
package position

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	deck       TEXT PRIMARY KEY,
	slide      INTEGER NOT NULL,
	updated_at TEXT NOT NULL
);`

// Store is a deck.PositionStore backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open creates or opens the positions database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenMemory creates an in-memory store, useful for testing.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored slide index for the deck. ok is false when the
// deck has no stored position.
func (s *Store) Load(deckID string) (int, bool) {
	var slide int
	err := s.db.QueryRow(`SELECT slide FROM positions WHERE deck = ?`, deckID).Scan(&slide)
	if err != nil {
		// A corrupt row behaves like an absent one; the navigator falls
		// back to the first slide.
		return 0, false
	}
	return slide, true
}

// Save upserts the slide index for the deck.
func (s *Store) Save(deckID string, slide int) error {
	_, err := s.db.Exec(`
		INSERT INTO positions (deck, slide, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(deck) DO UPDATE SET slide = excluded.slide, updated_at = excluded.updated_at`,
		deckID, slide, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving position: %w", err)
	}
	return nil
}
