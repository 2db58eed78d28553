/*
rate.go - Nominal-to-monthly rate conversion

PURPOSE:
  Converts a nominal profit percentage stated over one profit period
  (e.g. 12% annually) into the effective monthly rate that reproduces
  it under monthly compounding.

KEY INSIGHT:
  The decomposition is GEOMETRIC, not linear. 12% annually is NOT 1%
  per month: compounding 1% twelve times gives 12.68%. The monthly rate
  r must satisfy (1+r)^12 = 1.12, i.e. r = 1.12^(1/12) - 1 ~= 0.9489%.
  This is the only conversion under which the simulator's repeated
  monthly compounding reproduces the stated nominal rate over one
  profit period exactly.

DOMAIN:
  Defined for profit percentages strictly above -100. At exactly -100
  the base is zero (total loss); below it the fractional power has a
  negative base and is undefined in the reals. Both are rejected with
  ErrInvalidRate.

SEE ALSO:
  - period.go: MonthsFor, shared with schedule building
  - simulate.go: applies the monthly rate each month
*/
package growth

import "math"

// =============================================================================
// RATE CONVERSION
// =============================================================================

// MonthlyRate returns the effective monthly compounding rate for a
// nominal profit percentage stated over the given profit period.
//
// For Monthly the conversion reduces exactly to profitPercentage/100:
// math.Pow(x, 1) is exact, so callers relying on the monthly identity
// get bit-for-bit equality, not just tolerance.
func MonthlyRate(profitPercentage float64, profitPeriod PeriodKind) (float64, error) {
	if profitPercentage <= -100 {
		return 0, &InvalidRateError{ProfitPercentage: profitPercentage}
	}

	n, err := MonthsFor(profitPeriod)
	if err != nil {
		return 0, err
	}

	nominal := profitPercentage / 100
	if n == 1 {
		return nominal, nil
	}
	return math.Pow(1+nominal, 1/float64(n)) - 1, nil
}
