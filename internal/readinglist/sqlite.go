// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readinglist

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps lists in a SQLite database. Each list is a set of rows
// ordered by position; a row in lists marks the key as written, so an empty
// list is distinct from an absent one.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates the database at path (DefaultSQLitePath
// when empty) and creates the schema if it does not exist.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		p, err := DefaultSQLitePath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lists (
			key TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			key TEXT NOT NULL REFERENCES lists(key) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (key, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Get returns the list under key in position order.
func (s *SQLiteStore) Get(key string) ([]string, bool, error) {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM lists WHERE key = ?`, key).Scan(&exists)
	if err != nil {
		return nil, false, fmt.Errorf("looking up %s: %w", key, err)
	}
	if exists == 0 {
		return nil, false, nil
	}

	rows, err := s.db.Query(`SELECT value FROM entries WHERE key = ? ORDER BY position`, key)
	if err != nil {
		return nil, false, fmt.Errorf("querying %s: %w", key, err)
	}
	defer rows.Close()

	list := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, false, fmt.Errorf("scanning %s: %w", key, err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating %s: %w", key, err)
	}
	return list, true, nil
}

// Set replaces the list under key in a single transaction.
func (s *SQLiteStore) Set(key string, list []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR IGNORE INTO lists (key) VALUES (?)`, key); err != nil {
		return fmt.Errorf("registering %s: %w", key, err)
	}
	if _, err := tx.Exec(`DELETE FROM entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clearing %s: %w", key, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO entries (key, position, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range list {
		if _, err := stmt.Exec(key, i, v); err != nil {
			return fmt.Errorf("inserting %s[%d]: %w", key, i, err)
		}
	}
	return tx.Commit()
}
