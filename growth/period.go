/*
Package growth provides the core investment growth engine.

PURPOSE:
  This package contains the pure calculation engine for compounding
  investment projections: converting a nominal profit rate into an
  effective monthly rate, expanding contribution segments into a
  month-indexed schedule, and simulating month-by-month growth against
  a no-profit baseline.

KEY CONCEPTS IN THIS FILE (period.go):
  - PeriodKind: the closed set of supported period lengths
  - MonthsFor: the single source of truth for period length in months

DESIGN PRINCIPLES:
  1. Purity: every function is deterministic and side-effect free
  2. Eager validation: all typed errors surface before any month is
     simulated; Simulate and Baseline themselves never fail
  3. Closed enums: period kinds are a tagged set, never free-form
     strings, so an unknown period is always a typed error
  4. Float semantics: balances are float64 throughout; display rounding
     is the caller's concern

SEE ALSO:
  - rate.go: nominal-to-monthly rate conversion
  - schedule.go: segment expansion into a month-indexed schedule
  - simulate.go: the compounding simulation and baseline
  - errors.go: the error taxonomy
*/
package growth

// =============================================================================
// PERIOD KIND - Closed set of supported period lengths
// =============================================================================

// PeriodKind identifies one of the supported period lengths. The zero
// value is not a valid kind; construct values only from the constants
// below (or plan.ParsePeriod for external tokens).
type PeriodKind string

const (
	Monthly   PeriodKind = "monthly"
	Quarterly PeriodKind = "quarterly"
	Annually  PeriodKind = "annually"
)

// MonthsFor returns the length of the period in months.
//
// Both rate conversion and schedule building go through this function,
// so the two can never disagree on how long a period is.
func MonthsFor(period PeriodKind) (int, error) {
	switch period {
	case Monthly:
		return 1, nil
	case Quarterly:
		return 3, nil
	case Annually:
		return 12, nil
	default:
		return 0, &InvalidPeriodError{Token: string(period)}
	}
}

// Valid reports whether the kind is one of the supported constants.
func (p PeriodKind) Valid() bool {
	_, err := MonthsFor(p)
	return err == nil
}

func (p PeriodKind) String() string { return string(p) }
