package physics

import "github.com/go-gl/mathgl/mgl64"

// Handle identifies a body owned by an Engine, zero is never issued
type Handle uint32

// BodyKind selects how a body is moved
type BodyKind uint8

const (
	// BodyFixed never moves
	BodyFixed BodyKind = iota
	// BodyDynamic is integrated under gravity, impulses and contacts
	BodyDynamic
	// BodyKinematic is moved to authored targets each step
	BodyKinematic
)

// Shape discriminates collider geometry
type Shape uint8

const (
	ShapeSphere Shape = iota
	ShapeBox
)

// ColliderDesc describes the single collider attached to a body
type ColliderDesc struct {
	Shape       Shape
	Radius      float64    // ShapeSphere
	HalfExtents mgl64.Vec3 // ShapeBox
	Density     float64
	Friction    float64
	Restitution float64
	Sensor      bool // Sensors never collide and are invisible to rays
}

// BodyDesc describes a body at creation
type BodyDesc struct {
	Kind         BodyKind
	Position     mgl64.Vec3
	Rotation     mgl64.Quat
	GravityScale float64
	Collider     ColliderDesc
}

// BodyState is the kinematic state of a body
type BodyState struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Linvel   mgl64.Vec3
	Angvel   mgl64.Vec3
}

// RayHit is the nearest surface found by a ray cast
type RayHit struct {
	Body     Handle
	Distance float64
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
}

// Engine is the rigid body contract consumed by the simulation
// All calls referencing unknown handles are no-ops; getters report ok=false
type Engine interface {
	CreateBody(desc BodyDesc) Handle
	RemoveBody(h Handle) bool
	Contains(h Handle) bool

	State(h Handle) (BodyState, bool)
	SetTranslation(h Handle, p mgl64.Vec3)
	SetRotation(h Handle, q mgl64.Quat)
	SetLinvel(h Handle, v mgl64.Vec3)
	SetAngvel(h Handle, w mgl64.Vec3)
	ApplyImpulse(h Handle, impulse mgl64.Vec3)

	// SetKinematicTarget schedules the pose a kinematic body reaches on the next Step
	SetKinematicTarget(h Handle, p mgl64.Vec3, q mgl64.Quat)

	// CastRay returns the nearest non-sensor hit within maxDist, skipping exclude
	// solid=true reports distance 0 when the origin starts inside a shape
	CastRay(origin, dir mgl64.Vec3, maxDist float64, solid bool, exclude Handle) (RayHit, bool)

	// Step advances the world synchronously by dt seconds
	Step(dt float64)
}
