package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/marble-sandbox/parameter"
)

// MockTimeProvider is a manual clock for deterministic ticks
// Tick steps one simulation frame, Advance jumps arbitrary spans
type MockTimeProvider struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start, step: parameter.TickInterval}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d and returns the new instant
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

func (m *MockTimeProvider) Tick() time.Time {
	return m.Advance(m.step)
}
