package render

import "github.com/go-gl/mathgl/mgl64"

// Handle identifies a drawable, zero is never issued
type Handle uint32

// Geometry selects a shared unit mesh
// Sphere has radius 1, box has half extents 1; transforms carry the scale
type Geometry uint8

const (
	GeometrySphere Geometry = iota
	GeometryBox
	// GeometryLight is an emissive point without a mesh
	GeometryLight
)

// Material is the per-instance appearance at creation
type Material struct {
	Color    RGB
	Emissive float64
	Tag      string // Surface material name, informational for renderers
}

// Renderer is the drawing collaborator; calls are fire-and-forget
// Unknown handles are ignored
type Renderer interface {
	Create(geom Geometry, mat Material) Handle
	Destroy(h Handle)
	SetTransform(h Handle, m mgl64.Mat4)
	SetParam(h Handle, name string, value float64)
	SetColor(h Handle, c RGB)
}

// View is the per-frame overlay state shown beside the scene
type View struct {
	Level       string
	Description string
	Score       int
	Complete    bool
	Menu        bool
	Levels      []string // Menu entries in selection order

	Controlled string
	Camera     mgl64.Vec3 // Focus point of the camera
	Yaw        float64
	Chase      bool

	Charge      float64
	JumpCharge  float64
	MagnetPower float64
	FocusEnergy float64
	TimeScale   float64
	Rewinding   bool
	Grappling   bool
	Effects     []string
}

// Presenter is implemented by renderers that draw a full frame on demand
type Presenter interface {
	Present(v View)
}
