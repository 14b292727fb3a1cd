package engine

import "time"

// TimeProvider is the clock read once per tick
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the wall clock; values carry a monotonic reading,
// so differences between them are immune to wall clock jumps
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() MonotonicTimeProvider {
	return MonotonicTimeProvider{}
}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
