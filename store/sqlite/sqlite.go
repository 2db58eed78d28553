/*
Package sqlite provides a SQLite-backed implementation of plan.RunStore.

PURPOSE:
  Durable run history for the API server. The growth engine itself is
  stateless; this store only records what projections were run and what
  they produced, so users can revisit and compare scenarios.

APPEND-ONLY ENFORCEMENT:
  Runs are immutable records:
  - No UPDATE statements on the runs table
  - No DELETE statements on the runs table
  - Re-running a plan creates a new run with a new id

SCHEMA:
  runs: one row per projection. The raw input definition is stored as
  JSON so the exact request can always be replayed; the scalar outcome
  columns make listing cheap without parsing JSON.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so history reads
  don't block new run writes.

USAGE:
  store, err := sqlite.New("./data/growth.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - plan/run.go: RunStore interface definition
  - plan/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/growth-engine/plan"
)

// Store implements plan.RunStore using SQLite.
type Store struct {
	db *sql.DB
}

// Compile-time check that Store implements plan.RunStore
var _ plan.RunStore = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Runs (append-only projection history)
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		definition_json TEXT NOT NULL,
		final_balance REAL NOT NULL,
		baseline REAL NOT NULL,
		gain REAL NOT NULL,
		monthly_rate REAL NOT NULL,
		total_months INTEGER NOT NULL
	);

	-- Listing is always newest-first
	CREATE INDEX IF NOT EXISTS idx_runs_created_at
		ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RUN STORE IMPLEMENTATION
// =============================================================================

// Save appends a run. Duplicate ids violate the primary key.
func (s *Store) Save(ctx context.Context, run plan.Run) error {
	defJSON, err := json.Marshal(run.Definition)
	if err != nil {
		return fmt.Errorf("failed to encode definition: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, definition_json, final_balance, baseline, gain, monthly_rate, total_months)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(defJSON),
		run.FinalBalance,
		run.Baseline,
		run.Gain,
		run.MonthlyRate,
		run.TotalMonths,
	)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	return nil
}

// Get returns the run with the given id, or plan.ErrRunNotFound.
func (s *Store) Get(ctx context.Context, id string) (plan.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, definition_json, final_balance, baseline, gain, monthly_rate, total_months
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return plan.Run{}, plan.ErrRunNotFound
	}
	if err != nil {
		return plan.Run{}, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return run, nil
}

// List returns up to limit runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]plan.Run, error) {
	query := `
		SELECT id, created_at, definition_json, final_balance, baseline, gain, monthly_rate, total_months
		FROM runs ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []plan.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(sc scanner) (plan.Run, error) {
	var (
		run       plan.Run
		createdAt string
		defJSON   string
	)

	err := sc.Scan(
		&run.ID,
		&createdAt,
		&defJSON,
		&run.FinalBalance,
		&run.Baseline,
		&run.Gain,
		&run.MonthlyRate,
		&run.TotalMonths,
	)
	if err != nil {
		return plan.Run{}, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return plan.Run{}, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	if err := json.Unmarshal([]byte(defJSON), &run.Definition); err != nil {
		return plan.Run{}, fmt.Errorf("bad definition json: %w", err)
	}
	return run, nil
}
