package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// body is the internal record behind a Handle
type body struct {
	handle   Handle
	kind     BodyKind
	collider ColliderDesc

	pos    mgl64.Vec3
	rot    mgl64.Quat
	linvel mgl64.Vec3
	angvel mgl64.Vec3

	gravityScale float64
	invMass      float64
	invInertia   float64 // Scalar approximation of the inverse inertia tensor
	boundRadius  float64

	hasTarget bool
	targetPos mgl64.Vec3
	targetRot mgl64.Quat
}

// World is the reference Engine: spheres and oriented boxes, impulse contacts
// Dynamic boxes collide through their bounding sphere
type World struct {
	Gravity    mgl64.Vec3
	Iterations int

	next   Handle
	bodies map[Handle]*body
	order  []Handle // Creation order for deterministic iteration
}

var _ Engine = (*World)(nil)

// NewWorld creates an empty world with default gravity
func NewWorld() *World {
	return &World{
		Gravity:    mgl64.Vec3{0, parameter.Gravity, 0},
		Iterations: parameter.SolverIterations,
		next:       1,
		bodies:     make(map[Handle]*body),
	}
}

// CreateBody adds a body and returns its handle
func (w *World) CreateBody(desc BodyDesc) Handle {
	h := w.next
	w.next++

	b := &body{
		handle:       h,
		kind:         desc.Kind,
		collider:     desc.Collider,
		pos:          desc.Position,
		rot:          vmath.SafeQuat(desc.Rotation),
		gravityScale: desc.GravityScale,
	}
	b.boundRadius = boundingRadius(desc.Collider)

	if desc.Kind == BodyDynamic {
		density := desc.Collider.Density
		if density <= 0 {
			density = 1
		}
		mass := density * volume(desc.Collider)
		if mass <= 0 {
			mass = 1
		}
		b.invMass = 1 / mass
		b.invInertia = 1 / inertia(desc.Collider, mass)
	}

	w.bodies[h] = b
	w.order = append(w.order, h)
	return h
}

// RemoveBody deletes a body; false when the handle is unknown
func (w *World) RemoveBody(h Handle) bool {
	if _, ok := w.bodies[h]; !ok {
		return false
	}
	delete(w.bodies, h)
	for i, oh := range w.order {
		if oh == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether the handle is live
func (w *World) Contains(h Handle) bool {
	_, ok := w.bodies[h]
	return ok
}

// Len returns the number of live bodies
func (w *World) Len() int {
	return len(w.bodies)
}

func (w *World) State(h Handle) (BodyState, bool) {
	b, ok := w.bodies[h]
	if !ok {
		return BodyState{}, false
	}
	return BodyState{Position: b.pos, Rotation: b.rot, Linvel: b.linvel, Angvel: b.angvel}, true
}

func (w *World) SetTranslation(h Handle, p mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok {
		b.pos = p
	}
}

func (w *World) SetRotation(h Handle, q mgl64.Quat) {
	if b, ok := w.bodies[h]; ok {
		b.rot = vmath.SafeQuat(q)
	}
}

func (w *World) SetLinvel(h Handle, v mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok && b.kind != BodyFixed {
		b.linvel = v
	}
}

func (w *World) SetAngvel(h Handle, v mgl64.Vec3) {
	if b, ok := w.bodies[h]; ok && b.kind != BodyFixed {
		b.angvel = v
	}
}

// ApplyImpulse changes linear velocity by impulse/mass; dynamic bodies only
func (w *World) ApplyImpulse(h Handle, impulse mgl64.Vec3) {
	b, ok := w.bodies[h]
	if !ok || b.kind != BodyDynamic {
		return
	}
	b.linvel = b.linvel.Add(impulse.Mul(b.invMass))
}

func (w *World) SetKinematicTarget(h Handle, p mgl64.Vec3, q mgl64.Quat) {
	b, ok := w.bodies[h]
	if !ok || b.kind != BodyKinematic {
		return
	}
	b.hasTarget = true
	b.targetPos = p
	b.targetRot = vmath.SafeQuat(q)
}

// Mass returns the body mass, zero for non-dynamic bodies
func (w *World) Mass(h Handle) float64 {
	b, ok := w.bodies[h]
	if !ok || b.invMass == 0 {
		return 0
	}
	return 1 / b.invMass
}

func volume(c ColliderDesc) float64 {
	switch c.Shape {
	case ShapeSphere:
		return 4.0 / 3.0 * math.Pi * c.Radius * c.Radius * c.Radius
	case ShapeBox:
		return 8 * c.HalfExtents[0] * c.HalfExtents[1] * c.HalfExtents[2]
	}
	return 0
}

func inertia(c ColliderDesc, mass float64) float64 {
	switch c.Shape {
	case ShapeSphere:
		return 0.4 * mass * c.Radius * c.Radius
	case ShapeBox:
		h := c.HalfExtents
		// Mean of the three principal moments
		sq := h[0]*h[0] + h[1]*h[1] + h[2]*h[2]
		return mass * 2 * sq / 9
	}
	return mass
}

func boundingRadius(c ColliderDesc) float64 {
	if c.Shape == ShapeBox {
		return c.HalfExtents.Len()
	}
	return c.Radius
}
