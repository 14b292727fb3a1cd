package level

import (
	"math"
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// Generator spawns one zone through the builder
type Generator func(b WorldBuilder, z Zone)

var generators = map[string]Generator{
	"floor":             floorZone,
	"ramp":              rampZone,
	"wall":              wallZone,
	"bumpers":           bumpersZone,
	"dominoes":          dominoesZone,
	"moving-platform":   movingPlatformZone,
	"rotating-platform": rotatingPlatformZone,
	"spiral":            spiralZone,
	"debris":            debrisZone,
	"pickups":           pickupsZone,
}

// Lookup returns the generator registered for a zone type
func Lookup(zoneType string) (Generator, bool) {
	g, ok := generators[zoneType]
	return g, ok
}

// ZoneTypes lists registered zone types in sorted order
func ZoneTypes() []string {
	types := make([]string, 0, len(generators))
	for t := range generators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

var materialColors = map[component.Material]render.RGB{
	component.MaterialStone:  {R: 130, G: 130, B: 140},
	component.MaterialWood:   {R: 160, G: 110, B: 60},
	component.MaterialMetal:  {R: 180, G: 190, B: 200},
	component.MaterialIce:    {R: 180, G: 230, B: 255},
	component.MaterialRubber: {R: 220, G: 60, B: 80},
	component.MaterialGlass:  {R: 150, G: 220, B: 210},
}

func material(z Zone, def component.Material) component.Material {
	if z.Material == "" {
		return def
	}
	return component.Material(z.Material)
}

func colorOf(m component.Material) render.RGB {
	if c, ok := materialColors[m]; ok {
		return c
	}
	return render.RGB{R: 200, G: 200, B: 200}
}

func box(pos mgl64.Vec3, rot mgl64.Quat, half mgl64.Vec3, m component.Material) component.BodySpec {
	return component.BodySpec{
		Shape:    physics.ShapeBox,
		Position: pos,
		Rotation: rot,
		Size:     half,
		Color:    colorOf(m),
		Material: m,
	}
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}

// floorZone is a slab whose top face sits at pos.y
func floorZone(b WorldBuilder, z Zone) {
	half := z.size(mgl64.Vec3{20, 0.5, 20})
	pos := z.Pos.V3().Sub(mgl64.Vec3{0, half.Y(), 0})
	b.AddStatic(box(pos, vmath.QuatYaw(degrees(z.Yaw)), half, material(z, component.MaterialStone)))
}

// rampZone tilts a plank about its local X axis, rising toward -Z at positive angle
func rampZone(b WorldBuilder, z Zone) {
	half := z.size(mgl64.Vec3{3, 0.25, 8})
	tilt := mgl64.QuatRotate(degrees(orDefault(z.Angle, 15)), mgl64.Vec3{1, 0, 0})
	rot := vmath.QuatYaw(degrees(z.Yaw)).Mul(tilt).Normalize()
	b.AddStatic(box(z.Pos.V3(), rot, half, material(z, component.MaterialWood)))
}

func wallZone(b WorldBuilder, z Zone) {
	half := z.size(mgl64.Vec3{0.5, 2, 10})
	pos := z.Pos.V3().Add(mgl64.Vec3{0, half.Y(), 0})
	b.AddStatic(box(pos, vmath.QuatYaw(degrees(z.Yaw)), half, material(z, component.MaterialStone)))
}

// bumpersZone rings heavy bouncy spheres around pos
func bumpersZone(b WorldBuilder, z Zone) {
	n := z.count(5)
	radius := z.size(mgl64.Vec3{0.8, 0, 0}).X()
	ring := orDefault(z.Distance, 4)
	m := material(z, component.MaterialRubber)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos := z.Pos.V3().Add(mgl64.Vec3{ring * math.Cos(angle), radius, ring * math.Sin(angle)})
		b.AddDynamic(component.BodySpec{
			Shape:    physics.ShapeSphere,
			Position: pos,
			Size:     mgl64.Vec3{radius, radius, radius},
			Color:    colorOf(m),
			Material: m,
			Density:  4,
		})
	}
}

// dominoesZone stands a row of thin boxes along the yaw direction
func dominoesZone(b WorldBuilder, z Zone) {
	n := z.count(10)
	half := z.size(mgl64.Vec3{0.6, 0.7, 0.1})
	gap := orDefault(z.Distance, 0.8)
	rot := vmath.QuatYaw(degrees(z.Yaw))
	step := rot.Rotate(mgl64.Vec3{0, 0, -gap})
	m := material(z, component.MaterialWood)
	for i := 0; i < n; i++ {
		pos := z.Pos.V3().Add(step.Mul(float64(i))).Add(mgl64.Vec3{0, half.Y(), 0})
		spec := box(pos, rot, half, m)
		spec.Density = 0.6
		b.AddDynamic(spec)
	}
}

func movingPlatformZone(b WorldBuilder, z Zone) {
	half := z.size(mgl64.Vec3{2, 0.25, 2})
	axis := mgl64.Vec3{1, 0, 0}
	if z.Axis != nil {
		axis = z.Axis.V3()
	}
	rot := vmath.QuatYaw(degrees(z.Yaw))
	m := material(z, component.MaterialMetal)
	motion := component.Oscillate(z.Pos.V3(), rot, axis, orDefault(z.Distance, 4), orDefault(z.Speed, 1), z.Phase)
	b.AddKinematic(box(z.Pos.V3(), rot, half, m), motion)
}

func rotatingPlatformZone(b WorldBuilder, z Zone) {
	half := z.size(mgl64.Vec3{4, 0.25, 1})
	rot := vmath.QuatYaw(degrees(z.Yaw))
	m := material(z, component.MaterialMetal)
	b.AddKinematic(box(z.Pos.V3(), rot, half, m), component.Spin(z.Pos.V3(), rot, orDefault(z.Speed, 0.5)))
}

// spiralZone winds tangent track segments upward around pos
func spiralZone(b WorldBuilder, z Zone) {
	n := z.count(16)
	radius := orDefault(z.Distance, 6)
	rise := z.size(mgl64.Vec3{0, 0.5, 0}).Y()
	m := material(z, component.MaterialStone)
	const turn = math.Pi / 6
	// Segment length matches the chord between neighbours
	length := radius * turn / 2 * 1.1
	for i := 0; i < n; i++ {
		angle := float64(i) * turn
		pos := z.Pos.V3().Add(mgl64.Vec3{radius * math.Cos(angle), float64(i) * rise, -radius * math.Sin(angle)})
		rot := vmath.QuatYaw(angle)
		b.AddStatic(box(pos, rot, mgl64.Vec3{1.5, 0.2, length}, m))
	}
}

// debrisZone scatters weightless boxes and spheres inside the zone volume
func debrisZone(b WorldBuilder, z Zone) {
	n := z.count(12)
	half := z.size(mgl64.Vec3{6, 3, 6})
	seed := z.Seed
	if seed == 0 {
		seed = int64(z.Pos.X*73856093) ^ int64(z.Pos.Y*19349663) ^ int64(z.Pos.Z*83492791)
	}
	rng := rand.New(rand.NewSource(seed))
	m := material(z, component.MaterialGlass)
	spread := func(h float64) float64 { return (rng.Float64()*2 - 1) * h }

	for i := 0; i < n; i++ {
		pos := z.Pos.V3().Add(mgl64.Vec3{spread(half.X()), spread(half.Y()), spread(half.Z())})
		size := 0.2 + rng.Float64()*0.4
		spec := component.BodySpec{
			Shape:         physics.ShapeSphere,
			Position:      pos,
			Size:          mgl64.Vec3{size, size, size},
			Color:         colorOf(m),
			Emissive:      0.2,
			Material:      m,
			CustomGravity: true,
			GravityScale:  0,
		}
		if i%2 == 1 {
			spec.Shape = physics.ShapeBox
			spec.Rotation = vmath.QuatYaw(rng.Float64() * 2 * math.Pi)
		}
		b.AddDynamic(spec)
	}
}

// pickupsZone lays collectibles along the yaw direction, led by an optional power-up
func pickupsZone(b WorldBuilder, z Zone) {
	n := z.count(5)
	gap := orDefault(z.Distance, 2)
	step := vmath.QuatYaw(degrees(z.Yaw)).Rotate(mgl64.Vec3{0, 0, -gap})
	start := z.Pos.V3()
	if kind, ok := component.ParseEffect(z.Effect); ok {
		b.AddPowerUp(start, kind)
		start = start.Add(step)
	}
	for i := 0; i < n; i++ {
		b.AddCollectible(start.Add(step.Mul(float64(i))))
	}
}
