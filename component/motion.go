package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/vmath"
)

// Oscillate translates sinusoidally along axis: base + axis·amplitude·sin(t·speed + phase)
func Oscillate(base mgl64.Vec3, rot mgl64.Quat, axis mgl64.Vec3, amplitude, speed, phase float64) MotionFunc {
	axis = vmath.V3Normalize(axis)
	return func(t float64) (mgl64.Vec3, mgl64.Quat) {
		return base.Add(axis.Mul(amplitude * math.Sin(t*speed+phase))), rot
	}
}

// Spin rotates about the vertical axis at a constant rate in rad/s
func Spin(base mgl64.Vec3, rot mgl64.Quat, speed float64) MotionFunc {
	return func(t float64) (mgl64.Vec3, mgl64.Quat) {
		return base, vmath.QuatYaw(t * speed).Mul(rot).Normalize()
	}
}
