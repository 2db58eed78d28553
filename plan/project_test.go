package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/growth-engine/growth"
	"github.com/warp/growth-engine/plan"
)

// =============================================================================
// PROJECTION TESTS
// =============================================================================

func TestProject_WorkedScenario(t *testing.T) {
	// GIVEN: 1000 at 12% annually, one year of 100/month (monthly profit period
	//        so duration units are months)
	// WHEN: Projecting
	// THEN: Result matches the core stages run by hand

	res, err := plan.ProjectDefinition(plan.Definition{
		InitialAmount:    1000,
		ProfitPercentage: 12,
		ProfitPeriod:     "monthly",
		Durations:        []int{12},
		Amounts:          []float64{100},
		Periods:          []string{"monthly"},
	})
	require.NoError(t, err)

	assert.Equal(t, 12, res.TotalMonths)
	assert.Equal(t, 0.12, res.MonthlyRate, "monthly profit period converts exactly")
	assert.Equal(t, 1000.0+12*100, res.Baseline)
	assert.Equal(t, res.FinalBalance-res.Baseline, res.Gain)

	rate, err := growth.MonthlyRate(12, growth.Monthly)
	require.NoError(t, err)
	schedule, err := growth.BuildSchedule([]growth.Segment{
		{DurationUnits: 12, Amount: 100, Period: growth.Monthly},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, growth.Simulate(1000, rate, schedule), res.FinalBalance)
}

func TestProject_AnnualProfitPeriodScalesDurations(t *testing.T) {
	// With an annual profit period, 2 duration units span 24 months.
	res, err := plan.ProjectDefinition(plan.Definition{
		InitialAmount:    500,
		ProfitPercentage: 10,
		ProfitPeriod:     "annually",
		Durations:        []int{2},
		Amounts:          []float64{0},
		Periods:          []string{"monthly"},
	})
	require.NoError(t, err)

	assert.Equal(t, 24, res.TotalMonths)
	assert.Equal(t, 500.0, res.Baseline, "zero contributions leave only the principal")
	// Two full annual periods of 10% compound to exactly 21% overall.
	assert.InDelta(t, 500*1.1*1.1, res.FinalBalance, 1e-9)
}

func TestProject_ValidationErrorsPropagate(t *testing.T) {
	cases := []struct {
		name string
		def  plan.Definition
		want error
	}{
		{
			name: "rate at total loss",
			def: plan.Definition{
				ProfitPercentage: -100,
				ProfitPeriod:     "annually",
				Durations:        []int{1},
				Amounts:          []float64{100},
				Periods:          []string{"monthly"},
			},
			want: growth.ErrInvalidRate,
		},
		{
			name: "zero duration",
			def: plan.Definition{
				ProfitPeriod: "annually",
				Durations:    []int{0},
				Amounts:      []float64{100},
				Periods:      []string{"monthly"},
			},
			want: growth.ErrInvalidDuration,
		},
		{
			name: "bad period token",
			def: plan.Definition{
				ProfitPeriod: "weekly",
				Durations:    []int{1},
				Amounts:      []float64{100},
				Periods:      []string{"monthly"},
			},
			want: growth.ErrInvalidPeriod,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := plan.ProjectDefinition(tc.def)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, growth.IsClientError(err), "validation failures are client errors")
		})
	}
}

func TestProject_MultiSegmentLifecycle(t *testing.T) {
	// GIVEN: An aggressive saving year, a paused year, then quarterly top-ups
	// WHEN: Projecting at zero percent
	// THEN: Final balance equals the baseline exactly

	res, err := plan.ProjectDefinition(plan.Definition{
		InitialAmount:    2000,
		ProfitPercentage: 0,
		ProfitPeriod:     "annually",
		Durations:        []int{1, 1, 1},
		Amounts:          []float64{400, 0, 300},
		Periods:          []string{"monthly", "monthly", "quarterly"},
	})
	require.NoError(t, err)

	assert.Equal(t, 36, res.TotalMonths)
	want := 2000.0 + 12*400 + 0 + 4*300
	assert.Equal(t, want, res.Baseline)
	assert.Equal(t, want, res.FinalBalance)
	assert.Equal(t, 0.0, res.Gain)
}
