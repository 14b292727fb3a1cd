package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
)

// StaticComponent is fixed level geometry
type StaticComponent struct {
	Body     physics.Handle
	Render   render.Handle
	Shape    physics.Shape
	Scale    mgl64.Vec3
	Material Material
}

// DynamicComponent is a simulated prop such as a bumper, domino or debris piece
type DynamicComponent struct {
	Body         physics.Handle
	Render       render.Handle
	Shape        physics.Shape
	Scale        mgl64.Vec3
	Material     Material
	GravityScale float64
}

// MotionFunc maps seconds since level start to a pose
type MotionFunc func(t float64) (mgl64.Vec3, mgl64.Quat)

// PlatformComponent is a kinematic body driven by a pure function of elapsed time
type PlatformComponent struct {
	Body     physics.Handle
	Render   render.Handle
	Shape    physics.Shape
	Scale    mgl64.Vec3
	Material Material
	Motion   MotionFunc
}
