package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// updateJump charges a grounded jump or performs a wall or air jump
func (s *Simulation) updateJump(in input.Intent) {
	c := &s.Controls
	_, m, st, ok := s.controlled()
	if !ok {
		c.JumpCharging, c.JumpCharge = false, 0
		return
	}

	if in.Jump.Pressed {
		if m.Grounded {
			c.JumpCharging, c.JumpCharge = true, 0
		} else {
			s.airJump(m, st)
		}
	}

	if !in.Jump.Released || !c.JumpCharging {
		return
	}
	magnitude := parameter.JumpBase + c.JumpCharge*parameter.JumpScale
	if s.effects.Active(component.EffectJump, s.now) {
		magnitude *= parameter.JumpEffectMul
	}
	s.phys.ApplyImpulse(m.Body, vmath.Up.Mul(magnitude))
	c.JumpCharging, c.JumpCharge = false, 0
	m.JumpsUsed = 1
}

// airJump prefers a wall kick; otherwise spends one of the limited air jumps
func (s *Simulation) airJump(m *component.MarbleComponent, st physics.BodyState) {
	if dir, ok := s.wallContact(m, st.Position); ok {
		impulse := dir.Mul(-parameter.WallJumpPush).Add(vmath.Up.Mul(parameter.WallJumpLift))
		s.phys.ApplyImpulse(m.Body, impulse)
		m.JumpsUsed = parameter.WallJumpUsedJump
		return
	}
	if m.JumpsUsed >= parameter.MaxJumps {
		return
	}
	s.phys.ApplyImpulse(m.Body, vmath.Up.Mul(parameter.AirJumpImpulse))
	m.JumpsUsed++
}

// wallContact casts evenly spaced horizontal rays and returns the first blocked direction
func (s *Simulation) wallContact(m *component.MarbleComponent, pos mgl64.Vec3) (mgl64.Vec3, bool) {
	reach := m.Radius + parameter.WallJumpReach
	for i := 0; i < parameter.WallJumpRays; i++ {
		angle := 2 * math.Pi * float64(i) / parameter.WallJumpRays
		dir := mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}
		if _, ok := s.phys.CastRay(pos, dir, reach, true, m.Body); ok {
			return dir, true
		}
	}
	return mgl64.Vec3{}, false
}
