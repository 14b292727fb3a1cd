package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// Step advances the world by dt seconds
// Order: kinematic targets, integration, contact iterations
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, h := range w.order {
		b := w.bodies[h]
		switch b.kind {
		case BodyKinematic:
			stepKinematic(b, dt)
		case BodyDynamic:
			w.integrate(b, dt)
		}
	}

	iterations := w.Iterations
	if iterations < 1 {
		iterations = 1
	}
	for it := 0; it < iterations; it++ {
		w.solveContacts()
	}
}

// stepKinematic moves to the scheduled target and derives velocity from the delta
func stepKinematic(b *body, dt float64) {
	if !b.hasTarget {
		b.linvel = mgl64.Vec3{}
		b.angvel = mgl64.Vec3{}
		return
	}

	b.linvel = b.targetPos.Sub(b.pos).Mul(1 / dt)

	// Shortest-arc delta rotation to angular velocity
	dq := b.targetRot.Mul(b.rot.Conjugate()).Normalize()
	if dq.W < 0 {
		dq = dq.Scale(-1)
	}
	sinHalf := dq.V.Len()
	if sinHalf > vmath.Epsilon {
		angle := 2 * math.Atan2(sinHalf, dq.W)
		b.angvel = dq.V.Mul(angle / (sinHalf * dt))
	} else {
		b.angvel = mgl64.Vec3{}
	}

	b.pos = b.targetPos
	b.rot = b.targetRot
	b.hasTarget = false
}

// integrate applies gravity and semi-implicit Euler to a dynamic body
func (w *World) integrate(b *body, dt float64) {
	b.linvel = b.linvel.Add(w.Gravity.Mul(b.gravityScale * dt))
	b.linvel = b.linvel.Mul(1 - parameter.LinearDamping*dt)
	b.angvel = b.angvel.Mul(1 - parameter.AngularDamping*dt)
	b.linvel = vmath.V3Clamp(b.linvel, parameter.MaxBodySpeed)

	b.pos = b.pos.Add(b.linvel.Mul(dt))
	b.rot = integrateRotation(b.rot, b.angvel, dt)
}

// integrateRotation advances q by angular velocity w over dt: q' = q + ½·ω·q·dt
func integrateRotation(q mgl64.Quat, w mgl64.Vec3, dt float64) mgl64.Quat {
	if vmath.V3IsZero(w) {
		return q
	}
	omega := mgl64.Quat{W: 0, V: w}
	dq := omega.Mul(q).Scale(0.5 * dt)
	return q.Add(dq).Normalize()
}

// contact is one penetration between a dynamic body A and any body B
// Normal points from B toward A
type contact struct {
	a, b   *body
	normal mgl64.Vec3
	depth  float64
	point  mgl64.Vec3
}

func (w *World) solveContacts() {
	n := len(w.order)
	for i := 0; i < n; i++ {
		a := w.bodies[w.order[i]]
		if a.kind != BodyDynamic || a.collider.Sensor {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b := w.bodies[w.order[j]]
			if b.collider.Sensor {
				continue
			}
			// Dynamic pairs resolve once, from the lower index
			if b.kind == BodyDynamic && j < i {
				continue
			}
			if c, ok := collide(a, b); ok {
				resolve(c)
			}
		}
	}
}

// collide treats A as a sphere of its bounding radius
func collide(a, b *body) (contact, bool) {
	ra := a.boundRadius
	if a.collider.Shape == ShapeSphere {
		ra = a.collider.Radius
	}

	if b.collider.Shape == ShapeBox && b.kind != BodyDynamic {
		return sphereBox(a, ra, b)
	}

	rb := b.boundRadius
	if b.collider.Shape == ShapeSphere {
		rb = b.collider.Radius
	}
	return sphereSphere(a, ra, b, rb)
}

func sphereSphere(a *body, ra float64, b *body, rb float64) (contact, bool) {
	delta := a.pos.Sub(b.pos)
	distSq := vmath.V3LenSq(delta)
	minDist := ra + rb
	if distSq >= minDist*minDist {
		return contact{}, false
	}

	dist := math.Sqrt(distSq)
	normal := vmath.Up
	if dist > vmath.Epsilon {
		normal = delta.Mul(1 / dist)
	}
	return contact{
		a:      a,
		b:      b,
		normal: normal,
		depth:  minDist - dist,
		point:  a.pos.Sub(normal.Mul(ra)),
	}, true
}

// sphereBox finds the closest point of an oriented box to the sphere center
func sphereBox(a *body, ra float64, b *body) (contact, bool) {
	inv := b.rot.Conjugate()
	local := inv.Rotate(a.pos.Sub(b.pos))
	h := b.collider.HalfExtents

	closest := mgl64.Vec3{
		vmath.Clamp(local[0], -h[0], h[0]),
		vmath.Clamp(local[1], -h[1], h[1]),
		vmath.Clamp(local[2], -h[2], h[2]),
	}
	diff := local.Sub(closest)
	distSq := vmath.V3LenSq(diff)
	if distSq > ra*ra {
		return contact{}, false
	}

	var nLocal mgl64.Vec3
	var depth float64
	if distSq > vmath.Epsilon*vmath.Epsilon {
		dist := math.Sqrt(distSq)
		nLocal = diff.Mul(1 / dist)
		depth = ra - dist
	} else {
		// Center inside the box: push out along the axis of least penetration
		best := math.Inf(1)
		for i := 0; i < 3; i++ {
			pen := h[i] - math.Abs(local[i])
			if pen < best {
				best = pen
				nLocal = mgl64.Vec3{}
				if local[i] < 0 {
					nLocal[i] = -1
				} else {
					nLocal[i] = 1
				}
			}
		}
		depth = ra + best
	}

	normal := b.rot.Rotate(nLocal)
	return contact{
		a:      a,
		b:      b,
		normal: normal,
		depth:  depth,
		point:  a.pos.Sub(normal.Mul(ra)),
	}, true
}

// resolve applies positional correction, normal impulse and Coulomb friction
func resolve(c contact) {
	a, b := c.a, c.b
	invSum := a.invMass + b.invMass
	if invSum == 0 {
		return
	}

	// Positional correction split by inverse mass
	if pen := c.depth - parameter.PenetrationSlop; pen > 0 {
		corr := c.normal.Mul(pen * parameter.PositionCorrection / invSum)
		a.pos = a.pos.Add(corr.Mul(a.invMass))
		b.pos = b.pos.Sub(corr.Mul(b.invMass))
	}

	rA := c.point.Sub(a.pos)
	rB := c.point.Sub(b.pos)

	rel := pointVelocity(a, rA).Sub(pointVelocity(b, rB))
	vn := rel.Dot(c.normal)
	if vn >= 0 {
		return
	}

	e := math.Max(a.collider.Restitution, b.collider.Restitution)
	if -vn < parameter.RestingSpeed {
		e = 0
	}
	jn := -(1 + e) * vn / invSum
	impulse := c.normal.Mul(jn)
	a.linvel = a.linvel.Add(impulse.Mul(a.invMass))
	b.linvel = b.linvel.Sub(impulse.Mul(b.invMass))

	// Friction along the residual tangential velocity
	rel = pointVelocity(a, rA).Sub(pointVelocity(b, rB))
	vt := rel.Sub(c.normal.Mul(rel.Dot(c.normal)))
	tLen := vt.Len()
	if tLen < vmath.Epsilon {
		return
	}
	t := vt.Mul(1 / tLen)

	k := invSum + a.invInertia*vmath.V3LenSq(rA.Cross(t)) + b.invInertia*vmath.V3LenSq(rB.Cross(t))
	if k <= 0 {
		return
	}
	mu := math.Sqrt(a.collider.Friction * b.collider.Friction)
	jt := vmath.Clamp(-tLen/k, -mu*jn, mu*jn)
	fr := t.Mul(jt)

	a.linvel = a.linvel.Add(fr.Mul(a.invMass))
	a.angvel = a.angvel.Add(rA.Cross(fr).Mul(a.invInertia))
	b.linvel = b.linvel.Sub(fr.Mul(b.invMass))
	b.angvel = b.angvel.Sub(rB.Cross(fr).Mul(b.invInertia))
}

// pointVelocity returns the velocity of a point at offset r from the body center
func pointVelocity(b *body, r mgl64.Vec3) mgl64.Vec3 {
	return b.linvel.Add(b.angvel.Cross(r))
}
