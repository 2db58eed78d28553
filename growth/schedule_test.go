package growth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/growth-engine/growth"
)

// =============================================================================
// SCHEDULE BUILDER TESTS
// =============================================================================

func TestBuildSchedule_SingleSegment(t *testing.T) {
	// GIVEN: One segment of 12 annual-period units contributing monthly
	// WHEN: Building with an annual profit period (12 months per unit)
	// THEN: One entry spanning months 1..144 with interval 1

	schedule, err := growth.BuildSchedule([]growth.Segment{
		{DurationUnits: 12, Amount: 100, Period: growth.Monthly},
	}, 12)
	require.NoError(t, err)

	require.Len(t, schedule.Entries, 1)
	assert.Equal(t, growth.ScheduleEntry{
		StartMonth:     1,
		EndMonth:       144,
		Amount:         100,
		IntervalMonths: 1,
	}, schedule.Entries[0])
	assert.Equal(t, 144, schedule.TotalMonths)
}

func TestBuildSchedule_WorkedScenarioEntry(t *testing.T) {
	// The worked scenario: 12 units of a monthly profit period.
	schedule, err := growth.BuildSchedule([]growth.Segment{
		{DurationUnits: 12, Amount: 100, Period: growth.Monthly},
	}, 1)
	require.NoError(t, err)

	require.Len(t, schedule.Entries, 1)
	assert.Equal(t, growth.ScheduleEntry{StartMonth: 1, EndMonth: 12, Amount: 100, IntervalMonths: 1}, schedule.Entries[0])
	assert.Equal(t, 12, schedule.TotalMonths)
}

func TestBuildSchedule_EntriesAreContiguous(t *testing.T) {
	// GIVEN: Several segments with mixed durations and cadences
	// WHEN: Building the schedule
	// THEN: Entry windows partition [1, TotalMonths] with no gaps or overlaps

	segments := []growth.Segment{
		{DurationUnits: 2, Amount: 500, Period: growth.Monthly},
		{DurationUnits: 1, Amount: 0, Period: growth.Quarterly},
		{DurationUnits: 3, Amount: 250, Period: growth.Annually},
		{DurationUnits: 1, Amount: -75, Period: growth.Monthly},
	}

	schedule, err := growth.BuildSchedule(segments, 12)
	require.NoError(t, err)
	require.Len(t, schedule.Entries, len(segments))

	assert.Equal(t, 1, schedule.Entries[0].StartMonth, "first entry starts at month 1")
	for i := 1; i < len(schedule.Entries); i++ {
		assert.Equal(t, schedule.Entries[i-1].EndMonth+1, schedule.Entries[i].StartMonth,
			"entry %d must start right after entry %d", i, i-1)
	}
	assert.Equal(t, schedule.Entries[len(schedule.Entries)-1].EndMonth, schedule.TotalMonths)

	// Every month resolves to exactly one entry.
	for m := 1; m <= schedule.TotalMonths; m++ {
		require.NotNil(t, schedule.EntryAt(m), "month %d has no entry", m)
	}
	assert.Nil(t, schedule.EntryAt(schedule.TotalMonths+1))
	assert.Nil(t, schedule.EntryAt(0))
}

func TestBuildSchedule_DurationScalesWithProfitPeriod(t *testing.T) {
	// Same segments, different profit period lengths.
	segments := []growth.Segment{{DurationUnits: 2, Amount: 10, Period: growth.Monthly}}

	monthly, err := growth.BuildSchedule(segments, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, monthly.TotalMonths)

	quarterly, err := growth.BuildSchedule(segments, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, quarterly.TotalMonths)

	annual, err := growth.BuildSchedule(segments, 12)
	require.NoError(t, err)
	assert.Equal(t, 24, annual.TotalMonths)
}

func TestBuildSchedule_ZeroDurationRejected(t *testing.T) {
	// GIVEN: A segment with duration 0
	// WHEN: Building
	// THEN: ErrInvalidDuration naming the offending segment

	_, err := growth.BuildSchedule([]growth.Segment{
		{DurationUnits: 1, Amount: 100, Period: growth.Monthly},
		{DurationUnits: 0, Amount: 100, Period: growth.Monthly},
	}, 12)
	require.ErrorIs(t, err, growth.ErrInvalidDuration)

	var derr *growth.InvalidDurationError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 1, derr.SegmentIndex)
	assert.Equal(t, 0, derr.DurationUnits)
}

func TestBuildSchedule_NegativeDurationRejected(t *testing.T) {
	_, err := growth.BuildSchedule([]growth.Segment{
		{DurationUnits: -3, Amount: 100, Period: growth.Monthly},
	}, 12)
	require.ErrorIs(t, err, growth.ErrInvalidDuration)
}

func TestBuildSchedule_UnknownSegmentPeriodRejected(t *testing.T) {
	_, err := growth.BuildSchedule([]growth.Segment{
		{DurationUnits: 1, Amount: 100, Period: growth.PeriodKind("weekly")},
	}, 12)
	require.ErrorIs(t, err, growth.ErrInvalidPeriod)
}

func TestBuildSchedule_EmptyPlanRejected(t *testing.T) {
	_, err := growth.BuildSchedule(nil, 12)
	require.ErrorIs(t, err, growth.ErrEmptyPlan)
}

func TestBuildSchedule_NonPositiveProfitPeriodRejected(t *testing.T) {
	_, err := growth.BuildSchedule([]growth.Segment{
		{DurationUnits: 1, Amount: 100, Period: growth.Monthly},
	}, 0)
	require.ErrorIs(t, err, growth.ErrInvalidDuration)
}

// =============================================================================
// CONTRIBUTION CADENCE TESTS
// =============================================================================

func TestScheduleEntry_ContributionDue_LastMonthOfBlock(t *testing.T) {
	// GIVEN: A quarterly cadence starting at month 1
	// WHEN: Checking each month
	// THEN: Contributions land on months 3, 6, 9, ... (block ends), not 1, 4, 7

	entry := growth.ScheduleEntry{StartMonth: 1, EndMonth: 12, Amount: 300, IntervalMonths: 3}

	due := make([]int, 0, 4)
	for m := 1; m <= 12; m++ {
		if entry.ContributionDue(m) {
			due = append(due, m)
		}
	}
	assert.Equal(t, []int{3, 6, 9, 12}, due)
}

func TestScheduleEntry_ContributionDue_OffsetWindow(t *testing.T) {
	// Cadence is relative to the entry's own start, not the global month index.
	entry := growth.ScheduleEntry{StartMonth: 5, EndMonth: 10, Amount: 100, IntervalMonths: 3}

	assert.False(t, entry.ContributionDue(5))
	assert.False(t, entry.ContributionDue(6))
	assert.True(t, entry.ContributionDue(7), "months 5-7 form the first block")
	assert.True(t, entry.ContributionDue(10))
	assert.False(t, entry.ContributionDue(4), "outside the window")
	assert.False(t, entry.ContributionDue(11), "outside the window")
}

func TestScheduleEntry_ContributionDue_NonPositiveAmountNeverFires(t *testing.T) {
	zero := growth.ScheduleEntry{StartMonth: 1, EndMonth: 12, Amount: 0, IntervalMonths: 1}
	negative := growth.ScheduleEntry{StartMonth: 1, EndMonth: 12, Amount: -50, IntervalMonths: 1}

	for m := 1; m <= 12; m++ {
		assert.False(t, zero.ContributionDue(m), "zero amount month %d", m)
		assert.False(t, negative.ContributionDue(m), "negative amount month %d", m)
	}
}
