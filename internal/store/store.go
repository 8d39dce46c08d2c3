// Package store persists finished scan reports in SQLite so a
// previous result can be shown before the first rescan. Only native
// builds link it; the browser build runs without persistence.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"dirscan/internal/app"
)

// Schema for the dirscan report store.
const schema = `
CREATE TABLE IF NOT EXISTS scans (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    root          TEXT NOT NULL,
    generated_ns  INTEGER NOT NULL,
    total_bytes   INTEGER NOT NULL,
    total_files   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scans_root ON scans(root, generated_ns);

CREATE TABLE IF NOT EXISTS scan_dirs (
    scan_id  INTEGER NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
    ordinal  INTEGER NOT NULL,
    path     TEXT NOT NULL,
    bytes    INTEGER NOT NULL,
    files    INTEGER NOT NULL,
    PRIMARY KEY (scan_id, ordinal)
);
`

// keepScansPerRoot bounds how much history one root accumulates.
const keepScansPerRoot = 10

// Store is the SQLite report store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at the given path and runs migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReport inserts a finished report and prunes old history for the
// same root.
func (s *Store) SaveReport(r app.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO scans (root, generated_ns, total_bytes, total_files)
		VALUES (?, ?, ?, ?)`,
		r.Root, r.GeneratedAt.UnixNano(), r.TotalBytes, r.TotalFiles,
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	scanID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO scan_dirs (scan_id, ordinal, path, bytes, files)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, d := range r.Dirs {
		if _, err := stmt.Exec(scanID, i, d.Path, d.Bytes, d.Files); err != nil {
			return fmt.Errorf("insert scan dir: %w", err)
		}
	}

	_, err = tx.Exec(`
		DELETE FROM scans
		WHERE root = ? AND id NOT IN (
			SELECT id FROM scans WHERE root = ?
			ORDER BY generated_ns DESC LIMIT ?
		)`, r.Root, r.Root, keepScansPerRoot)
	if err != nil {
		return fmt.Errorf("prune old scans: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// LastReport retrieves the newest report for root, or nil if none is
// stored.
func (s *Store) LastReport(root string) (*app.Report, error) {
	var (
		scanID      int64
		generatedNs int64
		r           app.Report
	)
	err := s.db.QueryRow(`
		SELECT id, root, generated_ns, total_bytes, total_files
		FROM scans
		WHERE root = ?
		ORDER BY generated_ns DESC
		LIMIT 1`, root,
	).Scan(&scanID, &r.Root, &generatedNs, &r.TotalBytes, &r.TotalFiles)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last report: %w", err)
	}
	r.GeneratedAt = time.Unix(0, generatedNs).UTC()

	rows, err := s.db.Query(`
		SELECT path, bytes, files
		FROM scan_dirs
		WHERE scan_id = ?
		ORDER BY ordinal ASC`, scanID,
	)
	if err != nil {
		return nil, fmt.Errorf("query scan dirs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d app.ReportDir
		if err := rows.Scan(&d.Path, &d.Bytes, &d.Files); err != nil {
			return nil, fmt.Errorf("scan dir row: %w", err)
		}
		r.Dirs = append(r.Dirs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scan dirs: %w", err)
	}

	return &r, nil
}
