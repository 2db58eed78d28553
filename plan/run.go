/*
run.go - Projection run records and the history store interface

PURPOSE:
  A Run is the durable record of one projection: the raw input, the
  outcome, and when it happened. The engine itself is stateless; run
  history is purely a collaborator-surface convenience so users can
  revisit and compare what-if scenarios.

STORE CONTRACT:
  Append-only. A run, once saved, is never updated; re-running a plan
  creates a new run. List returns newest first.

SEE ALSO:
  - store/memory.go: in-memory RunStore for tests and dev
  - store/sqlite: durable RunStore used by the server
*/
package plan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run id does not exist in the store.
var ErrRunNotFound = errors.New("run not found")

// =============================================================================
// RUN - Durable record of one projection
// =============================================================================

// Run records one executed projection.
type Run struct {
	ID        string
	CreatedAt time.Time

	// Input as submitted, pre-normalization.
	Definition Definition

	// Outcome (schedule omitted; it is recomputed on demand).
	FinalBalance float64
	Baseline     float64
	Gain         float64
	MonthlyRate  float64
	TotalMonths  int
}

// NewRun builds a run record from an input and its result.
func NewRun(def Definition, res Result) Run {
	return Run{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Definition:   def,
		FinalBalance: res.FinalBalance,
		Baseline:     res.Baseline,
		Gain:         res.Gain,
		MonthlyRate:  res.MonthlyRate,
		TotalMonths:  res.TotalMonths,
	}
}

// =============================================================================
// RUN STORE - Persistence interface
// =============================================================================

// RunStore persists projection runs. Implementations must be safe for
// concurrent use.
type RunStore interface {
	// Save appends a run. Run IDs are unique; saving a duplicate ID is
	// an error.
	Save(ctx context.Context, run Run) error

	// Get returns the run with the given id, or ErrRunNotFound.
	Get(ctx context.Context, id string) (Run, error)

	// List returns up to limit runs, newest first. limit <= 0 means no
	// limit.
	List(ctx context.Context, limit int) ([]Run, error)
}
