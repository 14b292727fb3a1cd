package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// Registry methods consumed by zone generators through level.WorldBuilder

func (r *Registry) AddStatic(spec component.BodySpec) {
	r.SpawnStatic(spec)
}

func (r *Registry) AddDynamic(spec component.BodySpec) {
	r.SpawnDynamic(spec)
}

func (r *Registry) AddKinematic(spec component.BodySpec, motion component.MotionFunc) {
	r.SpawnKinematic(spec, motion)
}

func (r *Registry) AddPowerUp(pos mgl64.Vec3, kind component.EffectKind) {
	r.SpawnPowerUp(pos, kind)
}

func (r *Registry) AddCollectible(pos mgl64.Vec3) {
	r.SpawnCollectible(pos)
}

func (r *Registry) AddCheckpoint(id int, region vmath.AABB, respawn *mgl64.Vec3) {
	r.SpawnCheckpoint(id, region, respawn)
}

func (r *Registry) AddGoal(id int, region vmath.AABB) {
	r.SpawnGoal(id, region)
}

func (r *Registry) AddMarble(spec component.MarbleSpec) {
	r.SpawnMarble(spec)
}
