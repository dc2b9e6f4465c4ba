// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists transform results so exercise authors can
// revisit the puzzles they generated.
//
// Records live in a single-table SQLite database under ~/.polysq/.
// Every record gets a UUID, and the store prunes itself to the
// configured limit on insert. History is advisory: a broken store must
// never block a transform, so callers treat write failures as warnings.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/dnafinder/crypto-sub001/internal/cipher"
	"github.com/dnafinder/crypto-sub001/internal/config"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("history record not found")
)

// =============================================================================
// RECORD TYPE
// =============================================================================

// Record is one persisted transform.
type Record struct {
	ID        string    `json:"id"`
	Cipher    string    `json:"cipher"`
	Direction string    `json:"direction"`
	Plain     string    `json:"plain"`
	Encrypted string    `json:"encrypted"`
	// Keys is the key echo serialized as JSON, originals included.
	Keys      []cipher.KeyEcho `json:"keys"`
	CreatedAt time.Time        `json:"created_at"`
}

// =============================================================================
// STORE
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS transforms (
	id         TEXT PRIMARY KEY,
	cipher     TEXT NOT NULL,
	direction  TEXT NOT NULL,
	plain      TEXT NOT NULL,
	encrypted  TEXT NOT NULL,
	keys_json  TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transforms_created ON transforms(created_at);
`

// Store is a SQLite-backed history of transforms.
type Store struct {
	db    *sql.DB
	limit int
}

// DefaultPath returns the default database location (~/.polysq/history.db).
func DefaultPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// Open opens (creating if necessary) the history database at path.
// limit caps stored records; 0 means unlimited.
func Open(path string, limit int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, limit: limit}, nil
}

// OpenDefault opens the store at the configured location.
func OpenDefault(cfg *config.Config) (*Store, error) {
	path := cfg.History.Path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return Open(path, cfg.History.Limit)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// Add persists one transform result and returns the stored record.
// Old records beyond the limit are pruned in the same transaction.
func (s *Store) Add(res *cipher.Result) (*Record, error) {
	rec := &Record{
		ID:        uuid.NewString(),
		Cipher:    res.Cipher,
		Direction: string(res.Direction),
		Plain:     res.Plain,
		Encrypted: res.Encrypted,
		Keys:      res.Keys,
		CreatedAt: time.Now().UTC(),
	}

	keysJSON, err := json.Marshal(rec.Keys)
	if err != nil {
		return nil, fmt.Errorf("failed to encode key echo: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO transforms (id, cipher, direction, plain, encrypted, keys_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Cipher, rec.Direction, rec.Plain, rec.Encrypted,
		string(keysJSON), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}

	if s.limit > 0 {
		_, err = tx.Exec(
			`DELETE FROM transforms WHERE id NOT IN
			 (SELECT id FROM transforms ORDER BY created_at DESC, id LIMIT ?)`,
			s.limit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to prune history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit record: %w", err)
	}
	return rec, nil
}

// Clear deletes all records and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM transforms`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// List returns the newest records first, at most n (0 = all).
func (s *Store) List(n int) ([]*Record, error) {
	query := `SELECT id, cipher, direction, plain, encrypted, keys_json, created_at
	          FROM transforms ORDER BY created_at DESC, id`
	var rows *sql.Rows
	var err error
	if n > 0 {
		rows, err = s.db.Query(query+` LIMIT ?`, n)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns one record by id, or by unambiguous id prefix so users
// can paste the short form shown in the list view.
func (s *Store) Get(id string) (*Record, error) {
	rows, err := s.db.Query(
		`SELECT id, cipher, direction, plain, encrypted, keys_json, created_at
		 FROM transforms WHERE id = ? OR id LIKE ? LIMIT 2`,
		id, id+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var matches []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous record id prefix: %s", id)
	}
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM transforms`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

func scanRecord(rows *sql.Rows) (*Record, error) {
	var rec Record
	var keysJSON, createdAt string
	if err := rows.Scan(&rec.ID, &rec.Cipher, &rec.Direction, &rec.Plain,
		&rec.Encrypted, &keysJSON, &createdAt); err != nil {
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}
	if err := json.Unmarshal([]byte(keysJSON), &rec.Keys); err != nil {
		return nil, fmt.Errorf("failed to decode key echo: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record timestamp: %w", err)
	}
	rec.CreatedAt = ts
	return &rec, nil
}
