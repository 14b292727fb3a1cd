package level

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// WorldBuilder is the spawning capability zone generators call against
type WorldBuilder interface {
	AddStatic(spec component.BodySpec)
	AddDynamic(spec component.BodySpec)
	AddKinematic(spec component.BodySpec, motion component.MotionFunc)
	AddPowerUp(pos mgl64.Vec3, kind component.EffectKind)
	AddCollectible(pos mgl64.Vec3)
	AddCheckpoint(id int, region vmath.AABB, respawn *mgl64.Vec3)
	AddGoal(id int, region vmath.AABB)
	AddMarble(spec component.MarbleSpec)
}
