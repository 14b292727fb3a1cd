package engine

import (
	"sync"
	"time"
)

// PausableClock is game time that freezes while paused
// Game elapsed = source elapsed - total paused time
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	paused    bool
	pauseAt   time.Time
	pausedFor time.Duration
}

// NewPausableClock creates a running clock over source, nil means the system clock
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{source: source}
}

// Now returns current game time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseAt.Add(-pc.pausedFor)
	}
	return pc.source.Now().Add(-pc.pausedFor)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseAt = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedFor += pc.source.Now().Sub(pc.pauseAt)
	pc.paused = false
	pc.pauseAt = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a running pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.pausedFor
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseAt)
	}
	return total
}
