package system

import (
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// updateGrappleFire attaches on press and detaches on release
func (s *Simulation) updateGrappleFire(in input.Intent) {
	c := &s.Controls
	if in.Secondary.Pressed {
		if _, m, st, ok := s.controlled(); ok {
			if hit, ok := s.phys.CastRay(st.Position, s.AimDirection(), parameter.GrappleRange, true, m.Body); ok {
				c.Grapple = Grapple{Active: true, Target: hit.Point, Body: hit.Body}
			}
		}
	}
	if in.Secondary.Released {
		c.Grapple = Grapple{}
	}
}

// pullGrapple reels the marble toward the fixed target point
// Detaches when the anchor body is gone or the marble arrives
func (s *Simulation) pullGrapple() {
	g := &s.Controls.Grapple
	if !g.Active {
		return
	}
	_, m, st, ok := s.controlled()
	if !ok || !s.phys.Contains(g.Body) {
		*g = Grapple{}
		return
	}

	delta := g.Target.Sub(st.Position)
	if delta.Len() < parameter.GrappleReleaseDist {
		*g = Grapple{}
		return
	}
	impulse := vmath.V3Normalize(delta).Mul(parameter.GrapplePull)
	if g.Target.Y() > st.Position.Y() {
		impulse = impulse.Add(vmath.Up.Mul(parameter.GrappleLift))
	}
	s.phys.ApplyImpulse(m.Body, impulse.Mul(s.forceScale()))
}
