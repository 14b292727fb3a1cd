package audio

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
)

// Recorder is a Player that logs calls as short strings, for tests
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

var _ Player = (*Recorder)(nil)

func (r *Recorder) add(format string, args ...any) {
	r.mu.Lock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
	r.mu.Unlock()
}

// Calls returns a copy of the call log
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Count returns how many calls start with prefix
func (r *Recorder) Count(prefix string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (r *Recorder) Impact(velocity, radius float64, material component.Material, key string) {
	r.add("impact %s %s %.2f %.2f", key, material, velocity, radius)
}

func (r *Recorder) RollStart(id core.Entity, radius float64, material component.Material, speed float64) {
	r.add("roll-start %d %s", id, material)
}

func (r *Recorder) RollUpdate(id core.Entity, radius float64, material component.Material, speed float64) {
	r.add("roll-update %d %s", id, material)
}

func (r *Recorder) RollStop(id core.Entity) {
	r.add("roll-stop %d", id)
}

func (r *Recorder) GoalChime()    { r.add("goal-chime") }
func (r *Recorder) BoostWhoosh()  { r.add("boost-whoosh") }
func (r *Recorder) CollectChime() { r.add("collect-chime") }
