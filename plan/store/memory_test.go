package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/growth-engine/plan"
	"github.com/warp/growth-engine/plan/store"
)

func testRun(id string, createdAt time.Time) plan.Run {
	return plan.Run{
		ID:        id,
		CreatedAt: createdAt,
		Definition: plan.Definition{
			InitialAmount:    1000,
			ProfitPercentage: 12,
			ProfitPeriod:     "annually",
			Durations:        []int{1},
			Amounts:          []float64{100},
			Periods:          []string{"monthly"},
		},
		FinalBalance: 2383.27,
		Baseline:     2200,
		Gain:         183.27,
		MonthlyRate:  0.009489,
		TotalMonths:  12,
	}
}

func TestMemory_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	run := testRun("run-1", time.Now().UTC())
	require.NoError(t, m.Save(ctx, run))

	got, err := m.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run, got)
}

func TestMemory_GetMissing(t *testing.T) {
	_, err := store.NewMemory().Get(context.Background(), "nope")
	require.ErrorIs(t, err, plan.ErrRunNotFound)
}

func TestMemory_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	run := testRun("run-1", time.Now().UTC())
	require.NoError(t, m.Save(ctx, run))
	assert.Error(t, m.Save(ctx, run))
}

func TestMemory_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.Save(ctx, testRun("old", base)))
	require.NoError(t, m.Save(ctx, testRun("mid", base.Add(time.Hour))))
	require.NoError(t, m.Save(ctx, testRun("new", base.Add(2*time.Hour))))

	runs, err := m.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "old", runs[2].ID)

	limited, err := m.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "new", limited[0].ID)
}
