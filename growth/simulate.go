/*
simulate.go - Month-by-month compounding simulation and baseline

PURPOSE:
  The terminal stage of the engine: walks an already-validated schedule
  month by month, compounding the balance and applying due
  contributions, and computes the no-profit baseline used as the
  comparison point for investment gain.

ORDER OF OPERATIONS (per month, significant):
  1. balance *= (1 + monthlyRate)     interest on the PRE-contribution
                                      balance, every month
  2. balance += entry.Amount          only if a contribution is due

  A month's contribution therefore never earns that month's interest;
  it starts compounding the following month.

BASELINE:
  The baseline accumulates floor(entryMonths/interval) contributions
  per entry over the initial amount, with no compounding. The floor
  matches the simulator's "fires on the last month of each interval
  block" rule, so a partial trailing block contributes in neither.
  Unlike the simulator, the baseline carries the entry amount through
  unconditionally; for non-positive amounts the two components diverge
  deliberately (source behavior, kept as-is).

ERRORS:
  None. All validation happens upstream in BuildSchedule/MonthlyRate;
  this file operates only on already-validated inputs.

SEE ALSO:
  - schedule.go: ContributionDue, the cadence rule
  - rate.go: where monthlyRate comes from
*/
package growth

// =============================================================================
// SIMULATOR - Compounding walk over the schedule
// =============================================================================

// Simulate runs the compounding simulation and returns the balance
// after the schedule's final month. Deterministic, no I/O.
func Simulate(initialAmount, monthlyRate float64, schedule Schedule) float64 {
	balance := initialAmount

	for m := 1; m <= schedule.TotalMonths; m++ {
		balance *= 1 + monthlyRate

		if entry := schedule.EntryAt(m); entry != nil && entry.ContributionDue(m) {
			balance += entry.Amount
		}
	}

	return balance
}

// =============================================================================
// BASELINE - Contributions only, no compounding
// =============================================================================

// Baseline returns the initial amount plus every contribution the
// schedule would make, with no profit applied. Independent of any
// rate: varying the monthly rate leaves the baseline unchanged.
func Baseline(initialAmount float64, schedule Schedule) float64 {
	total := initialAmount

	for _, entry := range schedule.Entries {
		count := entry.Months() / entry.IntervalMonths
		total += float64(count) * entry.Amount
	}

	return total
}
