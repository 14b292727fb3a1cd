package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/physics"
)

// RewindFrame is the kinematic state of the controlled marble at one tick
type RewindFrame struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Linvel   mgl64.Vec3
	Angvel   mgl64.Vec3
}

func FrameFromState(s physics.BodyState) RewindFrame {
	return RewindFrame{Position: s.Position, Rotation: s.Rotation, Linvel: s.Linvel, Angvel: s.Angvel}
}
