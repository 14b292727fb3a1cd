package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Counters is a keyed set of int64 counters readable from any goroutine
// Registration takes the mutex; cached pointers are lock-free
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

func NewCounters() *Counters {
	return &Counters{items: make(map[string]*atomic.Int64)}
}

// Get returns the counter for key, creating it on first use
func (c *Counters) Get(key string) *atomic.Int64 {
	c.mu.RLock()
	ptr, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return ptr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ptr, ok := c.items[key]; ok {
		return ptr
	}
	ptr = new(atomic.Int64)
	c.items[key] = ptr
	return ptr
}

// Value reads a counter, zero when never registered
func (c *Counters) Value(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ptr, ok := c.items[key]; ok {
		return ptr.Load()
	}
	return 0
}

// Range visits counters in sorted key order
func (c *Counters) Range(fn func(key string, value int64)) {
	c.mu.RLock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	c.mu.RUnlock()
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, c.Value(k))
	}
}

// AtomicFloat holds a float64 as its bit pattern
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }
