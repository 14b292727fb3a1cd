package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// applyAim turns pointer delta into yaw and clamped pitch
// Pointer right turns right, pointer up looks up
func (s *Simulation) applyAim(in input.Intent) {
	c := &s.Controls
	c.Yaw -= in.AimDX * parameter.AimSensitivity
	c.Yaw = math.Remainder(c.Yaw, 2*math.Pi)
	c.Pitch = vmath.Clamp(c.Pitch-in.AimDY*parameter.AimSensitivity, -parameter.AimPitchLimit, parameter.AimPitchLimit)
}

// AimDirection is the unit vector the player is looking along
func (s *Simulation) AimDirection() mgl64.Vec3 {
	return vmath.AimDirection(s.Controls.Yaw, s.Controls.Pitch)
}
