// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records completed check runs in a SQLite database.
//
// The database is an append-only run log for the `runs` subcommand; it is
// never consulted before a lookup, so past results cannot short-circuit new
// queries.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bibcheck/internal/check"
	"github.com/pdiddy/bibcheck/pkg/types"
)

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// RunInfo summarizes one recorded run.
type RunInfo struct {
	ID        int64
	Source    string
	StartedAt time.Time
	Total     int
	Found     int
	NotFound  int
	Errors    int
}

// NewStore opens or creates the history database at cfg.Path and creates
// the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	source     TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL,
	total      INTEGER NOT NULL,
	found      INTEGER NOT NULL,
	not_found  INTEGER NOT NULL,
	errors     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	run_id      INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	entry_id    TEXT NOT NULL,
	title       TEXT NOT NULL,
	query       TEXT NOT NULL,
	success     INTEGER NOT NULL,
	found       INTEGER NOT NULL,
	num_results INTEGER NOT NULL,
	error       TEXT NOT NULL,
	PRIMARY KEY (run_id, position)
);`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun appends one completed run and its results in a single
// transaction and returns the new run ID.
func (s *Store) RecordRun(ctx context.Context, source string, startedAt time.Time, results []types.CheckResult) (int64, error) {
	report := check.Summarize(results)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, started_at, total, found, not_found, errors) VALUES (?, ?, ?, ?, ?, ?)`,
		source, startedAt.UTC(), report.Total, report.Found, report.NotFound, report.Errors)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, position, entry_id, title, query, success, found, num_results, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing result insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.ExecContext(ctx, runID, i, r.EntryID, r.Title, r.Query, r.Success, r.Found, r.NumResults, r.Error); err != nil {
			return 0, fmt.Errorf("inserting result %s: %w", r.EntryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns recorded runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, started_at, total, found, not_found, errors FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(&r.ID, &r.Source, &r.StartedAt, &r.Total, &r.Found, &r.NotFound, &r.Errors); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunResults returns the results of one recorded run in original order.
func (s *Store) RunResults(ctx context.Context, runID int64) ([]types.CheckResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, title, query, success, found, num_results, error
		 FROM results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", runID, err)
	}
	defer rows.Close()

	var results []types.CheckResult
	for rows.Next() {
		var r types.CheckResult
		if err := rows.Scan(&r.EntryID, &r.Title, &r.Query, &r.Success, &r.Found, &r.NumResults, &r.Error); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no recorded run with id %d", runID)
	}
	return results, nil
}
