/*
project.go - Plan projection

PURPOSE:
  Composes the core's operations into the one question callers ask:
  "what does this plan end up worth, and how much of that is profit?"

PIPELINE:
  MonthsFor(profit period) -> MonthlyRate -> BuildSchedule
  -> Simulate + Baseline -> Result

  All validation errors surface from the first three stages; the last
  two cannot fail on a validated schedule.

SEE ALSO:
  - definition.go: Normalize, which produces the Plan consumed here
  - growth package: the individual stages
*/
package plan

import "github.com/warp/growth-engine/growth"

// =============================================================================
// RESULT - The projection outcome
// =============================================================================

// Result is the full outcome of projecting a plan.
type Result struct {
	// FinalBalance after the last simulated month.
	FinalBalance float64

	// Baseline is the contributions-only counterfactual: initial amount
	// plus every contribution, no profit.
	Baseline float64

	// Gain is FinalBalance - Baseline: what compounding earned beyond
	// simply saving the contributions.
	Gain float64

	// MonthlyRate actually used by the simulation.
	MonthlyRate float64

	// TotalMonths is the simulation horizon.
	TotalMonths int

	// Schedule is the expanded month-indexed schedule, kept for display.
	Schedule growth.Schedule
}

// =============================================================================
// PROJECTION
// =============================================================================

// Project runs the full pipeline over a normalized plan.
func Project(p Plan) (Result, error) {
	monthsPerProfitPeriod, err := growth.MonthsFor(p.ProfitPeriod)
	if err != nil {
		return Result{}, err
	}

	rate, err := growth.MonthlyRate(p.ProfitPercentage, p.ProfitPeriod)
	if err != nil {
		return Result{}, err
	}

	schedule, err := growth.BuildSchedule(p.Segments, monthsPerProfitPeriod)
	if err != nil {
		return Result{}, err
	}

	final := growth.Simulate(p.InitialAmount, rate, schedule)
	baseline := growth.Baseline(p.InitialAmount, schedule)

	return Result{
		FinalBalance: final,
		Baseline:     baseline,
		Gain:         final - baseline,
		MonthlyRate:  rate,
		TotalMonths:  schedule.TotalMonths,
		Schedule:     schedule,
	}, nil
}

// ProjectDefinition normalizes and projects in one step. Convenience
// for callers holding raw input.
func ProjectDefinition(def Definition) (Result, error) {
	p, err := Normalize(def)
	if err != nil {
		return Result{}, err
	}
	return Project(p)
}
