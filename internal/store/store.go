// Package store provides the durable key/value store backing all persistent
// state: a single sqlite database holding string keys mapped to serialized
// JSON values. Reads are infallible by policy; a missing or unparseable
// value degrades to the caller's default instead of surfacing an error.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const dbFile = "garden.db"

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);
`

// Store wraps the key/value database connection
type Store struct {
	conn    *sql.DB
	baseDir string
}

// Open opens (creating if necessary) the store under baseDir
func Open(baseDir string) (*Store, error) {
	dbPath := filepath.Join(baseDir, dbFile)

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// Enable WAL mode for concurrent reads while writes are serialized
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Set busy timeout as fallback protection (500ms, matches lock timeout)
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	// Slightly faster writes, still safe with WAL
	conn.Exec("PRAGMA synchronous=NORMAL")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{conn: conn, baseDir: baseDir}, nil
}

// Close closes the store
func (s *Store) Close() error {
	return s.conn.Close()
}

// BaseDir returns the directory holding the store
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Get returns the raw value for key, or false if the key is absent or the
// read fails. Callers cannot distinguish a read failure from absence.
func (s *Store) Get(key string) ([]byte, bool) {
	var value []byte
	err := s.conn.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set writes the value for key, replacing any previous value
func (s *Store) Set(key string, value []byte) error {
	return s.withWriteLock(func() error {
		_, err := s.conn.Exec(
			"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value)
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes the value for key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	return s.withWriteLock(func() error {
		if _, err := s.conn.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	})
}

// GetJSON decodes the value for key into v. Returns false when the key is
// absent or the stored value fails to parse; v is left untouched in that
// case so callers fall back to their documented default.
func (s *Store) GetJSON(key string, v interface{}) bool {
	data, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// SetJSON encodes v and stores it under key
func (s *Store) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(key, data)
}

// withWriteLock executes fn while holding an exclusive write lock.
// This prevents torn writes from multiple processes; the documented
// consistency model stays last-write-wins.
func (s *Store) withWriteLock(fn func() error) error {
	locker := newWriteLocker(s.baseDir)
	if err := locker.acquire(defaultTimeout); err != nil {
		return err
	}
	defer locker.release()
	return fn()
}
