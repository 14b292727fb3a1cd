package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/render"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// CheckpointComponent is a one-shot respawn volume
// Activated is written once per level attempt
type CheckpointComponent struct {
	ID         int
	Region     vmath.AABB
	HasRespawn bool
	Respawn    mgl64.Vec3
	Activated  bool
	Render     render.Handle
	Scale      mgl64.Vec3
}

// RespawnPoint is the authored point, or just above the top face
// A region without a Y ceiling lifts from the activating position instead
func (c *CheckpointComponent) RespawnPoint(lift float64, at mgl64.Vec3) mgl64.Vec3 {
	if c.HasRespawn {
		return c.Respawn
	}
	center := c.Region.Center()
	top := c.Region.Top()
	if math.IsInf(top, 0) {
		top = at.Y()
	}
	return mgl64.Vec3{center.X(), top + lift, center.Z()}
}

// GoalComponent is a scoring volume, Y may be unbounded
type GoalComponent struct {
	ID     int
	Region vmath.AABB
	Render render.Handle
	Scale  mgl64.Vec3
}
