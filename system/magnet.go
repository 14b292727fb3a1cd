package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// magnetImpulse is the per-tick field impulse on a body at other from a magnet at self
// Attraction points toward self; repel is its exact negation
func magnetImpulse(self, other mgl64.Vec3, power float64, repel bool) (mgl64.Vec3, bool) {
	delta := self.Sub(other)
	d := delta.Len()
	if d > parameter.MagnetRadius || d < vmath.Epsilon || power <= 0 {
		return mgl64.Vec3{}, false
	}
	clamped := math.Max(d, parameter.MagnetMinDist)
	impulse := delta.Mul(parameter.MagnetStrength * power / (clamped * clamped * d))
	if repel {
		impulse = impulse.Mul(-1)
	}
	return impulse, true
}

// updateMagnet applies the field while held and power remains, regenerating otherwise
func (s *Simulation) updateMagnet(in input.Intent) {
	c := &s.Controls
	c.MagnetActive = false

	self, _, st, ok := s.controlled()
	if !ok || !(in.MagnetAttract || in.MagnetRepel) || c.MagnetPower <= 0 {
		c.MagnetPower = min(c.MagnetPower+parameter.MagnetRegen, parameter.MagnetPowerMax)
		return
	}

	c.MagnetActive = true
	repel := in.MagnetRepel && !in.MagnetAttract
	scale := s.forceScale()

	s.reg.Marbles.Each(func(e core.Entity, m *component.MarbleComponent) {
		if e == self {
			return
		}
		if other, ok := s.phys.State(m.Body); ok {
			if impulse, ok := magnetImpulse(st.Position, other.Position, c.MagnetPower, repel); ok {
				s.phys.ApplyImpulse(m.Body, impulse.Mul(scale))
			}
		}
	})
	s.reg.Dynamics.Each(func(_ core.Entity, d *component.DynamicComponent) {
		if other, ok := s.phys.State(d.Body); ok {
			if impulse, ok := magnetImpulse(st.Position, other.Position, c.MagnetPower, repel); ok {
				s.phys.ApplyImpulse(d.Body, impulse.Mul(scale))
			}
		}
	})

	c.MagnetPower = max(c.MagnetPower-parameter.MagnetDrain, 0)
}
