package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/vmath"
)

// CastRay returns the nearest non-sensor hit along dir within maxDist
func (w *World) CastRay(origin, dir mgl64.Vec3, maxDist float64, solid bool, exclude Handle) (RayHit, bool) {
	dir = vmath.V3Normalize(dir)
	if vmath.V3IsZero(dir) || maxDist <= 0 {
		return RayHit{}, false
	}

	best := RayHit{Distance: math.Inf(1)}
	found := false
	for _, h := range w.order {
		if h == exclude {
			continue
		}
		b := w.bodies[h]
		if b.collider.Sensor {
			continue
		}

		var t float64
		var n mgl64.Vec3
		var ok bool
		if b.collider.Shape == ShapeBox {
			t, n, ok = rayBox(origin, dir, b, solid)
		} else {
			t, n, ok = raySphere(origin, dir, b.pos, b.collider.Radius, solid)
		}
		if !ok || t > maxDist || t >= best.Distance {
			continue
		}
		best = RayHit{Body: h, Distance: t, Point: origin.Add(dir.Mul(t)), Normal: n}
		found = true
	}
	return best, found
}

func raySphere(origin, dir, center mgl64.Vec3, r float64, solid bool) (float64, mgl64.Vec3, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := vmath.V3LenSq(oc) - r*r
	disc := b*b - c
	if disc < 0 {
		return 0, mgl64.Vec3{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		// Origin inside or sphere behind
		if c > 0 {
			return 0, mgl64.Vec3{}, false
		}
		if solid {
			return 0, vmath.V3Normalize(oc), true
		}
		t = -b + sq
	}
	p := origin.Add(dir.Mul(t))
	return t, vmath.V3Normalize(p.Sub(center)), true
}

// rayBox runs the slab test in box-local space
func rayBox(origin, dir mgl64.Vec3, b *body, solid bool) (float64, mgl64.Vec3, bool) {
	inv := b.rot.Conjugate()
	o := inv.Rotate(origin.Sub(b.pos))
	d := inv.Rotate(dir)
	h := b.collider.HalfExtents

	tmin, tmax := math.Inf(-1), math.Inf(1)
	axisMin, axisMax := -1, -1
	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < vmath.Epsilon {
			if o[i] < -h[i] || o[i] > h[i] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		t1 := (-h[i] - o[i]) / d[i]
		t2 := (h[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin, axisMin = t1, i
		}
		if t2 < tmax {
			tmax, axisMax = t2, i
		}
		if tmin > tmax {
			return 0, mgl64.Vec3{}, false
		}
	}
	if tmax < 0 {
		return 0, mgl64.Vec3{}, false
	}

	t, axis, sign := tmin, axisMin, -1.0
	if tmin < 0 {
		if solid {
			return 0, b.rot.Rotate(vmath.Up), true
		}
		t, axis, sign = tmax, axisMax, 1.0
	}

	var n mgl64.Vec3
	if axis >= 0 {
		// Entry faces oppose the ray, exit faces follow it
		if d[axis] > 0 {
			n[axis] = sign
		} else {
			n[axis] = -sign
		}
	}
	return t, b.rot.Rotate(n), true
}
