package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
)

// MarbleComponent is one rolling actor
// Respawn is replaced by each newly activated checkpoint; Scored only grows until a respawn
type MarbleComponent struct {
	Name    string
	Body    physics.Handle
	Render  render.Handle
	Light   render.Handle // Zero when the marble carries no light
	Radius  float64
	Scale   mgl64.Vec3
	Color   render.RGB
	Rainbow bool

	Spawn   mgl64.Vec3
	Respawn mgl64.Vec3
	Scored  map[int]struct{}

	// Resolution state refreshed each tick
	Grounded     bool
	JumpsUsed    int
	Surface      Material
	Rolling      bool
	LastImpact   time.Time
	LastVelocity mgl64.Vec3
	Tinted       bool
}

// HasScored reports whether the goal id is in the scored set
func (m *MarbleComponent) HasScored(goal int) bool {
	_, ok := m.Scored[goal]
	return ok
}

// MarkScored adds the goal id, false when it was already present
func (m *MarbleComponent) MarkScored(goal int) bool {
	if m.HasScored(goal) {
		return false
	}
	if m.Scored == nil {
		m.Scored = make(map[int]struct{})
	}
	m.Scored[goal] = struct{}{}
	return true
}

func (m *MarbleComponent) ClearScored() {
	clear(m.Scored)
}
