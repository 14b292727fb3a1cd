package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestApproachNeverOvershoots(t *testing.T) {
	v := 1.0
	for i := 0; i < 200; i++ {
		next := Approach(v, 0.2, 0.1)
		if next < 0.2 {
			t.Fatalf("Approach overshot target at step %d: %f", i, next)
		}
		if math.Abs(next-v) > math.Abs(0.2-v)*0.1+2*Epsilon {
			t.Fatalf("Step %d moved more than rate allows: %f -> %f", i, v, next)
		}
		v = next
	}
	if math.Abs(v-0.2) > 1e-6 {
		t.Errorf("Expected convergence to 0.2, got %f", v)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 {
		t.Error("Expected clamp to upper bound")
	}
	if Clamp(-5, 0, 1) != 0 {
		t.Error("Expected clamp to lower bound")
	}
	if Clamp01(0.5) != 0.5 {
		t.Error("Expected passthrough inside range")
	}
}

func TestV3NormalizeZero(t *testing.T) {
	if n := V3Normalize(mgl64.Vec3{}); n != (mgl64.Vec3{}) {
		t.Errorf("Expected zero vector, got %v", n)
	}
	n := V3Normalize(mgl64.Vec3{3, 0, 4})
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Len())
	}
}

func TestAimDirection(t *testing.T) {
	d := AimDirection(0, 0)
	if !d.ApproxEqual(mgl64.Vec3{0, 0, -1}) {
		t.Errorf("Expected -Z at zero yaw, got %v", d)
	}
	up := AimDirection(0, math.Pi/2)
	if math.Abs(up[1]-1) > 1e-9 {
		t.Errorf("Expected +Y at max pitch, got %v", up)
	}
	fwd, right := AimBasis(0)
	if math.Abs(fwd.Dot(right)) > 1e-12 {
		t.Errorf("Expected orthogonal basis, dot=%f", fwd.Dot(right))
	}
}

func TestAABBSphereOverlap(t *testing.T) {
	box := AABBFromCenter(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	if !box.OverlapsSphere(mgl64.Vec3{1.4, 0, 0}, 0.5) {
		t.Error("Expected overlap when sphere reaches face")
	}
	if box.OverlapsSphere(mgl64.Vec3{1.6, 0, 0}, 0.5) {
		t.Error("Expected no overlap beyond radius")
	}
}

func TestAABBUnboundedAxis(t *testing.T) {
	box := AABBFromSpans([2]float64{-1, 1}, Unbounded, [2]float64{4, 2})
	if !box.ContainsPoint(mgl64.Vec3{0, 1e6, 3}) {
		t.Error("Expected unbounded Y to contain any height")
	}
	if box.Min[2] != 2 || box.Max[2] != 4 {
		t.Errorf("Expected spans to be ordered, got %v..%v", box.Min, box.Max)
	}
	c := box.Center()
	if c[1] != 0 || c[2] != 3 {
		t.Errorf("Unexpected center %v", c)
	}
}

func TestComposeTransform(t *testing.T) {
	m := Compose(mgl64.Vec3{1, 2, 3}, mgl64.Quat{}, mgl64.Vec3{2, 2, 2})
	p := m.Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	if !p.Vec3().ApproxEqual(mgl64.Vec3{3, 2, 3}) {
		t.Errorf("Expected scaled then translated point, got %v", p)
	}
}
