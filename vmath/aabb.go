package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned box; infinite bounds leave an axis unconstrained
type AABB struct {
	Min, Max mgl64.Vec3
}

// AABBFromCenter builds a box from center and half extents
func AABBFromCenter(center, half mgl64.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// AABBFromSpans builds a box from per-axis [min,max] spans
func AABBFromSpans(x, y, z [2]float64) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(x[0], x[1]), math.Min(y[0], y[1]), math.Min(z[0], z[1])},
		Max: mgl64.Vec3{math.Max(x[0], x[1]), math.Max(y[0], y[1]), math.Max(z[0], z[1])},
	}
}

// Unbounded is the span used for an axis with no limit
var Unbounded = [2]float64{math.Inf(-1), math.Inf(1)}

// Center returns the box midpoint, using the finite bound for half-open axes
func (b AABB) Center() mgl64.Vec3 {
	var c mgl64.Vec3
	for i := 0; i < 3; i++ {
		lo, hi := b.Min[i], b.Max[i]
		switch {
		case math.IsInf(lo, 0) && math.IsInf(hi, 0):
			c[i] = 0
		case math.IsInf(lo, 0):
			c[i] = hi
		case math.IsInf(hi, 0):
			c[i] = lo
		default:
			c[i] = (lo + hi) / 2
		}
	}
	return c
}

// HalfExtents returns half the box size per axis
func (b AABB) HalfExtents() mgl64.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// ContainsPoint tests inclusive containment
func (b AABB) ContainsPoint(p mgl64.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// OverlapsSphere tests center±radius against the box on every axis
func (b AABB) OverlapsSphere(center mgl64.Vec3, radius float64) bool {
	for i := 0; i < 3; i++ {
		if center[i]+radius < b.Min[i] || center[i]-radius > b.Max[i] {
			return false
		}
	}
	return true
}

// Top returns the upper Y bound
func (b AABB) Top() float64 {
	return b.Max[1]
}
