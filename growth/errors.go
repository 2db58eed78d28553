/*
errors.go - Centralized error types for the growth engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Caller packages (plan, api) wrap these errors with request context.

ERROR CATEGORIES:
  1. Period errors   - Unrecognized period kinds/tokens
  2. Rate errors     - Nominal rates outside the defined domain
  3. Schedule errors - Malformed segment lists

USAGE:
  Callers branch on sentinels:

    if errors.Is(err, growth.ErrInvalidPeriod) {
        // 400, not 500
    }

  and recover detail via errors.As:

    var perr *growth.InvalidPeriodError
    if errors.As(err, &perr) {
        log.Printf("bad period token: %q", perr.Token)
    }

SEE ALSO:
  - period.go: Returns ErrInvalidPeriod
  - rate.go: Returns ErrInvalidRate
  - schedule.go: Returns ErrInvalidDuration, ErrEmptyPlan
  - plan package: Returns ErrInputShapeMismatch during normalization
*/
package growth

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidPeriod is returned for any period outside the supported
	// set {Monthly, Quarterly, Annually}. Unknown periods are never
	// silently coerced.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidRate is returned when the nominal profit percentage is
	// -100 or below: the conversion takes a fractional power of
	// (1 + pct/100), which is undefined for a non-positive base.
	ErrInvalidRate = errors.New("invalid rate: profit percentage must be greater than -100")

	// ErrInvalidDuration is returned when a segment's duration is not a
	// positive number of profit periods.
	ErrInvalidDuration = errors.New("invalid duration: must be a positive integer")

	// ErrEmptyPlan is returned when a schedule is built from zero
	// segments. A zero-month horizon is a caller bug, surfaced eagerly.
	ErrEmptyPlan = errors.New("empty plan: at least one segment required")

	// ErrInputShapeMismatch is returned during input normalization when
	// a parallel amount/period list is neither a singleton to broadcast
	// nor the same length as the duration list.
	ErrInputShapeMismatch = errors.New("input shape mismatch")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidPeriodError reports the offending token or kind.
type InvalidPeriodError struct {
	Token string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period %q: want monthly, quarterly, or annually", e.Token)
}

func (e *InvalidPeriodError) Unwrap() error { return ErrInvalidPeriod }

// InvalidRateError reports a profit percentage outside the domain of
// the geometric conversion.
type InvalidRateError struct {
	ProfitPercentage float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid profit percentage %v: must be greater than -100", e.ProfitPercentage)
}

func (e *InvalidRateError) Unwrap() error { return ErrInvalidRate }

// InvalidDurationError reports which segment carried a non-positive
// duration.
type InvalidDurationError struct {
	SegmentIndex  int
	DurationUnits int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("segment %d: invalid duration %d: must be a positive integer",
		e.SegmentIndex, e.DurationUnits)
}

func (e *InvalidDurationError) Unwrap() error { return ErrInvalidDuration }

// ShapeMismatchError reports a parallel-list length disagreement found
// during input normalization.
type ShapeMismatchError struct {
	Field string // "amounts" or "periods"
	Want  int    // number of durations
	Got   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s has %d values, want 1 (broadcast) or %d (one per duration)",
		e.Field, e.Got, e.Want)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrInputShapeMismatch }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrEmptyPlan) ||
		errors.Is(err, ErrInputShapeMismatch)
}
