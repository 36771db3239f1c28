// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report persists a ledger of completed processing runs in a
// SQLite database, so batch users can audit what was rewritten and
// which notes degraded to raw-text passthrough.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/incipit-engine/internal/rewrite"
)

// Store manages the run-ledger SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating the
// schema if it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			document TEXT NOT NULL,
			style TEXT NOT NULL,
			notes_total INTEGER NOT NULL,
			notes_rewritten INTEGER NOT NULL,
			notes_degraded INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS warnings (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			note_index INTEGER NOT NULL,
			reason TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_warnings_run_id ON warnings(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run is one recorded processing pass.
type Run struct {
	ID             int64
	Document       string
	Style          string
	NotesTotal     int
	NotesRewritten int
	NotesDegraded  int
	CreatedAt      time.Time
}

// Record stores a completed pass and its warnings, returning the run id.
func (s *Store) Record(ctx context.Context, document, style string, rep *rewrite.Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (document, style, notes_total, notes_rewritten, notes_degraded, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		document, style, rep.NotesTotal, rep.NotesRewritten, rep.Degraded(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, w := range rep.Warnings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO warnings (run_id, note_index, reason) VALUES (?, ?, ?)`,
			id, w.NoteIndex, w.Reason,
		); err != nil {
			return 0, fmt.Errorf("inserting warning: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document, style, notes_total, notes_rewritten, notes_degraded, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Document, &r.Style, &r.NotesTotal, &r.NotesRewritten, &r.NotesDegraded, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Warnings returns the degradation warnings recorded for a run.
func (s *Store) Warnings(ctx context.Context, runID int64) ([]rewrite.Warning, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT note_index, reason FROM warnings WHERE run_id = ? ORDER BY note_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying warnings: %w", err)
	}
	defer rows.Close()

	var out []rewrite.Warning
	for rows.Next() {
		var w rewrite.Warning
		if err := rows.Scan(&w.NoteIndex, &w.Reason); err != nil {
			return nil, fmt.Errorf("scanning warning: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
