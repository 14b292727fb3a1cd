package audio

import (
	"sync"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
)

// Player is the sound surface the simulation drives
// Implementations must tolerate calls from a single game goroutine at tick rate
type Player interface {
	// Impact plays a one-shot collision sound; key identifies the source for dedupe
	Impact(velocity, radius float64, material component.Material, key string)

	RollStart(id core.Entity, radius float64, material component.Material, speed float64)
	RollUpdate(id core.Entity, radius float64, material component.Material, speed float64)
	RollStop(id core.Entity)

	GoalChime()
	BoostWhoosh()
	CollectChime()
}

// Muter is implemented by players with a mute switch
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// Nop discards every sound
type Nop struct{}

func (Nop) Impact(float64, float64, component.Material, string)          {}
func (Nop) RollStart(core.Entity, float64, component.Material, float64)  {}
func (Nop) RollUpdate(core.Entity, float64, component.Material, float64) {}
func (Nop) RollStop(core.Entity)                                         {}
func (Nop) GoalChime()                                                   {}
func (Nop) BoostWhoosh()                                                 {}
func (Nop) CollectChime()                                                {}

// Guard forwards to a player that may be absent or swapped at runtime
type Guard struct {
	mu sync.RWMutex
	p  Player
}

var _ Player = (*Guard)(nil)

// NewGuard wraps p; nil plays nothing
func NewGuard(p Player) *Guard {
	return &Guard{p: p}
}

// Set replaces the wrapped player
func (g *Guard) Set(p Player) {
	g.mu.Lock()
	g.p = p
	g.mu.Unlock()
}

func (g *Guard) player() Player {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.p == nil {
		return Nop{}
	}
	return g.p
}

func (g *Guard) Impact(velocity, radius float64, material component.Material, key string) {
	g.player().Impact(velocity, radius, material, key)
}

func (g *Guard) RollStart(id core.Entity, radius float64, material component.Material, speed float64) {
	g.player().RollStart(id, radius, material, speed)
}

func (g *Guard) RollUpdate(id core.Entity, radius float64, material component.Material, speed float64) {
	g.player().RollUpdate(id, radius, material, speed)
}

func (g *Guard) RollStop(id core.Entity) {
	g.player().RollStop(id)
}

func (g *Guard) GoalChime()    { g.player().GoalChime() }
func (g *Guard) BoostWhoosh()  { g.player().BoostWhoosh() }
func (g *Guard) CollectChime() { g.player().CollectChime() }

// ToggleMute flips the wrapped player's mute state; false without a Muter
func (g *Guard) ToggleMute() bool {
	if m, ok := g.player().(Muter); ok {
		return m.ToggleMute()
	}
	return false
}
