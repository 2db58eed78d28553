// Package store provides RunStore implementations.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/warp/growth-engine/plan"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu   sync.RWMutex
	runs map[string]plan.Run
}

// Compile-time check that Memory implements plan.RunStore
var _ plan.RunStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{runs: make(map[string]plan.Run)}
}

func (m *Memory) Save(_ context.Context, run plan.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.runs[run.ID]; exists {
		return fmt.Errorf("duplicate run id %s", run.ID)
	}
	m.runs[run.ID] = run
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (plan.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return plan.Run{}, plan.ErrRunNotFound
	}
	return run, nil
}

func (m *Memory) List(_ context.Context, limit int) ([]plan.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]plan.Run, 0, len(m.runs))
	for _, run := range m.runs {
		result = append(result, run)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
