package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// stomp drives an airborne marble straight down and arms the ground blast
func (s *Simulation) stomp() {
	_, m, st, ok := s.controlled()
	if !ok || m.Grounded {
		return
	}
	v := st.Linvel
	s.phys.SetLinvel(m.Body, mgl64.Vec3{v.X(), parameter.StompVelocity, v.Z()})
	s.Controls.StompArmed = true
}

// stompImpulse is the blast on a body at other from a landing at center, with linear falloff
func stompImpulse(center, other mgl64.Vec3) (mgl64.Vec3, bool) {
	delta := other.Sub(center)
	d := delta.Len()
	if d >= parameter.StompRadius {
		return mgl64.Vec3{}, false
	}
	outward := vmath.V3Normalize(delta).Mul(parameter.StompOutward)
	return outward.Add(vmath.Up.Mul(parameter.StompLift)).Mul(1 - d/parameter.StompRadius), true
}

// stompBlast throws every other marble and prop near the landing point
func (s *Simulation) stompBlast(self core.Entity, center mgl64.Vec3) {
	s.Controls.StompArmed = false
	s.reg.Marbles.Each(func(e core.Entity, m *component.MarbleComponent) {
		if e == self {
			return
		}
		if st, ok := s.phys.State(m.Body); ok {
			if impulse, ok := stompImpulse(center, st.Position); ok {
				s.phys.ApplyImpulse(m.Body, impulse)
			}
		}
	})
	s.reg.Dynamics.Each(func(_ core.Entity, d *component.DynamicComponent) {
		if st, ok := s.phys.State(d.Body); ok {
			if impulse, ok := stompImpulse(center, st.Position); ok {
				s.phys.ApplyImpulse(d.Body, impulse)
			}
		}
	})
	s.log.Debug().Float64("x", center.X()).Float64("z", center.Z()).Msg("Stomp landed")
}
