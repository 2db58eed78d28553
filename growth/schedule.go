/*
schedule.go - Segment expansion into a month-indexed schedule

PURPOSE:
  Expands an ordered list of contribution segments into contiguous,
  non-overlapping month ranges. The schedule is the simulator's only
  input besides the initial amount and the monthly rate: once built, it
  fully determines which contribution (if any) lands in every month.

INVARIANTS (enforced by construction, checked by tests):
  - Entry 1 starts at month 1
  - entry[i].EndMonth + 1 == entry[i+1].StartMonth (contiguous, no
    gaps, no overlaps)
  - Entries appear in segment order
  - TotalMonths == last entry's EndMonth

SEGMENT DURATION:
  A segment's duration is stated in profit periods, not months. With an
  annual profit period, DurationUnits=2 covers 24 months. The cadence
  of contributions WITHIN the segment is independent: a two-year
  segment can still contribute monthly.

SEE ALSO:
  - simulate.go: walks the schedule month by month
  - plan package: normalizes raw caller input into []Segment
*/
package growth

import "fmt"

// =============================================================================
// SEGMENT - Caller-defined span of the investment's life
// =============================================================================

// Segment describes one span of the investment's life: how long it
// lasts (in profit periods), how much is contributed, and how often.
// Immutable once constructed; consumed by BuildSchedule.
type Segment struct {
	// DurationUnits is the segment length in profit periods. Must be
	// a positive integer.
	DurationUnits int

	// Amount contributed at each cadence point. Zero means no
	// contribution; negative amounts are accepted but the simulator
	// never applies them (see Simulate).
	Amount float64

	// Period is the contribution cadence within the segment.
	Period PeriodKind
}

// =============================================================================
// SCHEDULE - Month-indexed expansion of the segments
// =============================================================================

// ScheduleEntry is the month-range expansion of one segment.
type ScheduleEntry struct {
	StartMonth     int // >= 1
	EndMonth       int // >= StartMonth
	Amount         float64
	IntervalMonths int // cadence in months, >= 1
}

// Months returns the number of months the entry spans.
func (e ScheduleEntry) Months() int { return e.EndMonth - e.StartMonth + 1 }

// Contains reports whether month m falls inside the entry's window.
func (e ScheduleEntry) Contains(m int) bool {
	return m >= e.StartMonth && m <= e.EndMonth
}

// ContributionDue reports whether a contribution lands in month m.
// Contributions land on the LAST month of each interval-length block
// within the entry's window, and only for positive amounts.
func (e ScheduleEntry) ContributionDue(m int) bool {
	if e.Amount <= 0 || !e.Contains(m) {
		return false
	}
	return (m-e.StartMonth+1)%e.IntervalMonths == 0
}

// Schedule is an ordered sequence of contiguous entries covering
// months 1..TotalMonths.
type Schedule struct {
	Entries     []ScheduleEntry
	TotalMonths int
}

// EntryAt returns the entry whose window contains month m, or nil when
// m is outside the schedule. Entries are contiguous, so at most one
// matches.
func (s Schedule) EntryAt(m int) *ScheduleEntry {
	for i := range s.Entries {
		if s.Entries[i].Contains(m) {
			return &s.Entries[i]
		}
	}
	return nil
}

// =============================================================================
// SCHEDULE BUILDER
// =============================================================================

// BuildSchedule expands segments into a schedule, maintaining a running
// cursor so entries come out contiguous and in segment order.
//
// monthsPerProfitPeriod scales each segment's DurationUnits into
// months; it comes from MonthsFor(profitPeriod) so that schedule length
// and rate conversion always agree on what one profit period is.
func BuildSchedule(segments []Segment, monthsPerProfitPeriod int) (Schedule, error) {
	if len(segments) == 0 {
		return Schedule{}, ErrEmptyPlan
	}
	if monthsPerProfitPeriod <= 0 {
		return Schedule{}, fmt.Errorf("months per profit period %d: %w", monthsPerProfitPeriod, ErrInvalidDuration)
	}

	entries := make([]ScheduleEntry, 0, len(segments))
	cursor := 1

	for i, seg := range segments {
		if seg.DurationUnits <= 0 {
			return Schedule{}, &InvalidDurationError{SegmentIndex: i, DurationUnits: seg.DurationUnits}
		}
		interval, err := MonthsFor(seg.Period)
		if err != nil {
			return Schedule{}, err
		}

		segMonths := seg.DurationUnits * monthsPerProfitPeriod
		entries = append(entries, ScheduleEntry{
			StartMonth:     cursor,
			EndMonth:       cursor + segMonths - 1,
			Amount:         seg.Amount,
			IntervalMonths: interval,
		})
		cursor += segMonths
	}

	return Schedule{Entries: entries, TotalMonths: cursor - 1}, nil
}
