package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis
var Up = mgl64.Vec3{0, 1, 0}

// V3Normalize returns the unit vector of v, zero vector for degenerate input
// mgl64 Normalize divides by length without guarding zero
func V3Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// V3LenSq returns squared length
func V3LenSq(v mgl64.Vec3) float64 {
	return v.Dot(v)
}

// V3Horizontal drops the vertical component
func V3Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// V3IsZero reports whether every component is within Epsilon of zero
func V3IsZero(v mgl64.Vec3) bool {
	return math.Abs(v[0]) < Epsilon && math.Abs(v[1]) < Epsilon && math.Abs(v[2]) < Epsilon
}

// V3Clamp limits vector magnitude
func V3Clamp(v mgl64.Vec3, maxLen float64) mgl64.Vec3 {
	l := v.Len()
	if l <= maxLen || l < Epsilon {
		return v
	}
	return v.Mul(maxLen / l)
}

// AimDirection converts yaw/pitch radians to a unit vector
// Yaw 0 faces -Z, positive yaw turns toward -X, positive pitch looks up
func AimDirection(yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return mgl64.Vec3{
		-math.Sin(yaw) * cp,
		math.Sin(pitch),
		-math.Cos(yaw) * cp,
	}
}

// AimBasis returns horizontal forward and right vectors for a yaw
func AimBasis(yaw float64) (forward, right mgl64.Vec3) {
	s, c := math.Sincos(yaw)
	forward = mgl64.Vec3{-s, 0, -c}
	right = mgl64.Vec3{c, 0, -s}
	return forward, right
}

// Compose builds a world transform as T * R * S
func Compose(pos mgl64.Vec3, rot mgl64.Quat, scale mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(SafeQuat(rot).Mat4()).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}

// SafeQuat maps the zero quaternion to identity and normalizes the rest
func SafeQuat(q mgl64.Quat) mgl64.Quat {
	if q.W == 0 && V3IsZero(q.V) {
		return mgl64.QuatIdent()
	}
	return q.Normalize()
}

// QuatYaw returns a rotation about the vertical axis
func QuatYaw(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, Up)
}
