package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
)

// BodySpec describes a level body before it is spawned
// Size is half extents for boxes; X is the radius for spheres
type BodySpec struct {
	Shape    physics.Shape
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Size     mgl64.Vec3
	Color    render.RGB
	Emissive float64
	Material Material

	// Zero means derive from Material
	Density     float64
	Friction    float64
	Restitution float64

	// GravityScale applies only when CustomGravity is set, otherwise 1
	GravityScale  float64
	CustomGravity bool
}

// MarbleSpec describes a marble from the catalog
type MarbleSpec struct {
	Name     string
	Radius   float64
	Color    render.RGB
	Rainbow  bool
	Light    bool
	Density  float64
	Position mgl64.Vec3
}

// Scale is the render scale matching the collider
func (s BodySpec) Scale() mgl64.Vec3 {
	if s.Shape == physics.ShapeSphere {
		return mgl64.Vec3{s.Size.X(), s.Size.X(), s.Size.X()}
	}
	return s.Size
}
