package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// owned is the handle set of one tracked entity
type owned struct {
	entity core.Entity
	body   physics.Handle
	render render.Handle
	light  render.Handle
}

// Registry owns every live actor of the loaded level and its engine handles
// Removal order per entity: physics body, render handles, bookkeeping
type Registry struct {
	Marbles      *Store[*component.MarbleComponent]
	Statics      *Store[*component.StaticComponent]
	Dynamics     *Store[*component.DynamicComponent]
	Platforms    *Store[*component.PlatformComponent]
	Checkpoints  *Store[*component.CheckpointComponent]
	Goals        *Store[*component.GoalComponent]
	PowerUps     *Store[*component.PowerUpComponent]
	Collectibles *Store[*component.CollectibleComponent]

	physics  physics.Engine
	renderer render.Renderer
	log      zerolog.Logger

	nextEntity core.Entity
	tracked    []owned
	materials  map[physics.Handle]component.Material
	bodies     map[physics.Handle]core.Entity
	controlled core.Entity
}

// NewRegistry binds the registry to its collaborators; a nil renderer draws nothing
func NewRegistry(eng physics.Engine, r render.Renderer, log zerolog.Logger) *Registry {
	if r == nil {
		r = &render.Nop{}
	}
	return &Registry{
		Marbles:      NewStore[*component.MarbleComponent](),
		Statics:      NewStore[*component.StaticComponent](),
		Dynamics:     NewStore[*component.DynamicComponent](),
		Platforms:    NewStore[*component.PlatformComponent](),
		Checkpoints:  NewStore[*component.CheckpointComponent](),
		Goals:        NewStore[*component.GoalComponent](),
		PowerUps:     NewStore[*component.PowerUpComponent](),
		Collectibles: NewStore[*component.CollectibleComponent](),
		physics:      eng,
		renderer:     r,
		log:          log,
		nextEntity:   1,
		materials:    make(map[physics.Handle]component.Material),
		bodies:       make(map[physics.Handle]core.Entity),
	}
}

// Physics returns the engine the registry creates bodies in
func (r *Registry) Physics() physics.Engine {
	return r.physics
}

// Renderer returns the drawing collaborator
func (r *Registry) Renderer() render.Renderer {
	return r.renderer
}

func (r *Registry) track(o owned) core.Entity {
	o.entity = r.nextEntity
	r.nextEntity++
	r.tracked = append(r.tracked, o)
	if o.body != 0 {
		r.bodies[o.body] = o.entity
	}
	return o.entity
}

// SpawnMarble creates a dynamic sphere; the first marble becomes controlled
func (r *Registry) SpawnMarble(spec component.MarbleSpec) core.Entity {
	density := spec.Density
	if density <= 0 {
		density = parameter.MarbleDensity
	}
	body := r.physics.CreateBody(physics.BodyDesc{
		Kind:         physics.BodyDynamic,
		Position:     spec.Position,
		Rotation:     mgl64.QuatIdent(),
		GravityScale: 1,
		Collider: physics.ColliderDesc{
			Shape:       physics.ShapeSphere,
			Radius:      spec.Radius,
			Density:     density,
			Friction:    parameter.MarbleFriction,
			Restitution: parameter.MarbleRestitution,
		},
	})

	scale := mgl64.Vec3{spec.Radius, spec.Radius, spec.Radius}
	rh := r.renderer.Create(render.GeometrySphere, render.Material{Color: spec.Color, Tag: "marble"})
	r.renderer.SetTransform(rh, vmath.Compose(spec.Position, mgl64.QuatIdent(), scale))

	var light render.Handle
	if spec.Light {
		light = r.renderer.Create(render.GeometryLight, render.Material{Color: spec.Color, Emissive: 1})
		r.renderer.SetTransform(light, mgl64.Translate3D(spec.Position.X(), spec.Position.Y(), spec.Position.Z()))
	}

	e := r.track(owned{body: body, render: rh, light: light})
	r.Marbles.Put(e, &component.MarbleComponent{
		Name:    spec.Name,
		Body:    body,
		Render:  rh,
		Light:   light,
		Radius:  spec.Radius,
		Scale:   scale,
		Color:   spec.Color,
		Rainbow: spec.Rainbow,
		Spawn:   spec.Position,
		Respawn: spec.Position,
		Scored:  make(map[int]struct{}),
	})
	if r.controlled == 0 {
		r.controlled = e
	}
	return e
}

func (r *Registry) bodyDesc(kind physics.BodyKind, spec component.BodySpec) physics.BodyDesc {
	surface := component.SurfaceOf(spec.Material)
	friction, restitution := spec.Friction, spec.Restitution
	if friction == 0 {
		friction = surface.Friction
	}
	if restitution == 0 {
		restitution = surface.Restitution
	}
	density := spec.Density
	if density <= 0 {
		density = parameter.DefaultDensity
	}
	gravity := 1.0
	if spec.CustomGravity {
		gravity = spec.GravityScale
	}

	collider := physics.ColliderDesc{
		Shape:       spec.Shape,
		Density:     density,
		Friction:    friction,
		Restitution: restitution,
	}
	if spec.Shape == physics.ShapeSphere {
		collider.Radius = spec.Size.X()
	} else {
		collider.HalfExtents = spec.Size
	}

	return physics.BodyDesc{
		Kind:         kind,
		Position:     spec.Position,
		Rotation:     vmath.SafeQuat(spec.Rotation),
		GravityScale: gravity,
		Collider:     collider,
	}
}

func (r *Registry) drawable(spec component.BodySpec) render.Handle {
	geom := render.GeometryBox
	if spec.Shape == physics.ShapeSphere {
		geom = render.GeometrySphere
	}
	material := spec.Material
	if material == "" {
		material = component.MaterialDefault
	}
	h := r.renderer.Create(geom, render.Material{Color: spec.Color, Emissive: spec.Emissive, Tag: string(material)})
	r.renderer.SetTransform(h, vmath.Compose(spec.Position, vmath.SafeQuat(spec.Rotation), spec.Scale()))
	return h
}

func materialOrDefault(m component.Material) component.Material {
	if m == "" {
		return component.MaterialDefault
	}
	return m
}

// SpawnStatic creates fixed geometry
func (r *Registry) SpawnStatic(spec component.BodySpec) core.Entity {
	body := r.physics.CreateBody(r.bodyDesc(physics.BodyFixed, spec))
	rh := r.drawable(spec)
	material := materialOrDefault(spec.Material)
	r.materials[body] = material

	e := r.track(owned{body: body, render: rh})
	r.Statics.Put(e, &component.StaticComponent{
		Body:     body,
		Render:   rh,
		Shape:    spec.Shape,
		Scale:    spec.Scale(),
		Material: material,
	})
	return e
}

// SpawnDynamic creates a simulated prop
func (r *Registry) SpawnDynamic(spec component.BodySpec) core.Entity {
	desc := r.bodyDesc(physics.BodyDynamic, spec)
	body := r.physics.CreateBody(desc)
	rh := r.drawable(spec)
	material := materialOrDefault(spec.Material)
	r.materials[body] = material

	e := r.track(owned{body: body, render: rh})
	r.Dynamics.Put(e, &component.DynamicComponent{
		Body:         body,
		Render:       rh,
		Shape:        spec.Shape,
		Scale:        spec.Scale(),
		Material:     material,
		GravityScale: desc.GravityScale,
	})
	return e
}

// SpawnKinematic creates a platform moved by motion(t)
func (r *Registry) SpawnKinematic(spec component.BodySpec, motion component.MotionFunc) core.Entity {
	if motion != nil {
		// Start at the t=0 pose so the first step derives no spurious velocity
		spec.Position, spec.Rotation = motion(0)
	}
	body := r.physics.CreateBody(r.bodyDesc(physics.BodyKinematic, spec))
	rh := r.drawable(spec)
	material := materialOrDefault(spec.Material)
	r.materials[body] = material

	e := r.track(owned{body: body, render: rh})
	r.Platforms.Put(e, &component.PlatformComponent{
		Body:     body,
		Render:   rh,
		Shape:    spec.Shape,
		Scale:    spec.Scale(),
		Material: material,
		Motion:   motion,
	})
	return e
}

// regionDrawable renders a volume, clamping unbounded axes to a thin slab at zero
func (r *Registry) regionDrawable(region vmath.AABB, color render.RGB) (render.Handle, mgl64.Vec3) {
	center := region.Center()
	half := region.HalfExtents()
	for i := 0; i < 3; i++ {
		if math.IsInf(half[i], 0) {
			half[i] = 0.05
			center[i] = 0
		}
	}
	h := r.renderer.Create(render.GeometryBox, render.Material{Color: color, Emissive: 0.3, Tag: "volume"})
	r.renderer.SetTransform(h, vmath.Compose(center, mgl64.QuatIdent(), half))
	return h, half
}

// SpawnCheckpoint creates a one-shot respawn volume; respawn may be nil
func (r *Registry) SpawnCheckpoint(id int, region vmath.AABB, respawn *mgl64.Vec3) core.Entity {
	rh, scale := r.regionDrawable(region, render.RGB{R: 230, G: 200, B: 60})
	cp := &component.CheckpointComponent{
		ID:     id,
		Region: region,
		Render: rh,
		Scale:  scale,
	}
	if respawn != nil {
		cp.HasRespawn = true
		cp.Respawn = *respawn
	}

	e := r.track(owned{render: rh})
	r.Checkpoints.Put(e, cp)
	return e
}

// SpawnGoal creates a scoring volume
func (r *Registry) SpawnGoal(id int, region vmath.AABB) core.Entity {
	rh, scale := r.regionDrawable(region, render.RGB{R: 80, G: 255, B: 120})
	e := r.track(owned{render: rh})
	r.Goals.Put(e, &component.GoalComponent{
		ID:     id,
		Region: region,
		Render: rh,
		Scale:  scale,
	})
	return e
}

func (r *Registry) pickupBody(pos mgl64.Vec3, radius float64) physics.Handle {
	return r.physics.CreateBody(physics.BodyDesc{
		Kind:     physics.BodyFixed,
		Position: pos,
		Rotation: mgl64.QuatIdent(),
		Collider: physics.ColliderDesc{Shape: physics.ShapeSphere, Radius: radius, Sensor: true},
	})
}

// PowerUpColor returns the pickup tint of an effect kind
func PowerUpColor(kind component.EffectKind) render.RGB {
	switch kind {
	case component.EffectSpeed:
		return render.RGB{R: 255, G: 120, B: 40}
	case component.EffectJump:
		return render.RGB{R: 60, G: 200, B: 255}
	}
	return render.RGBWhite
}

// SpawnPowerUp creates a pickup granting kind
func (r *Registry) SpawnPowerUp(pos mgl64.Vec3, kind component.EffectKind) core.Entity {
	const radius = 0.5
	body := r.pickupBody(pos, radius)
	scale := mgl64.Vec3{radius, radius, radius}
	rh := r.renderer.Create(render.GeometrySphere, render.Material{Color: PowerUpColor(kind), Emissive: 1, Tag: kind.String()})
	r.renderer.SetTransform(rh, vmath.Compose(pos, mgl64.QuatIdent(), scale))

	e := r.track(owned{body: body, render: rh})
	r.PowerUps.Put(e, &component.PowerUpComponent{
		Kind:     kind,
		Position: pos,
		Body:     body,
		Render:   rh,
		Scale:    scale,
	})
	return e
}

// SpawnCollectible creates a score pickup
func (r *Registry) SpawnCollectible(pos mgl64.Vec3) core.Entity {
	const radius = 0.35
	body := r.pickupBody(pos, radius)
	scale := mgl64.Vec3{radius, radius, radius}
	rh := r.renderer.Create(render.GeometrySphere, render.Material{Color: render.RGB{R: 255, G: 215, B: 0}, Emissive: 0.8, Tag: "collectible"})
	r.renderer.SetTransform(rh, vmath.Compose(pos, mgl64.QuatIdent(), scale))

	e := r.track(owned{body: body, render: rh})
	r.Collectibles.Put(e, &component.CollectibleComponent{
		Position: pos,
		Body:     body,
		Render:   rh,
		Scale:    scale,
	})
	return e
}

// release frees the engine handles of one tracked entry
func (r *Registry) release(o owned) {
	if o.body != 0 {
		r.physics.RemoveBody(o.body)
		delete(r.materials, o.body)
		delete(r.bodies, o.body)
	}
	if o.render != 0 {
		r.renderer.Destroy(o.render)
	}
	if o.light != 0 {
		r.renderer.Destroy(o.light)
	}
}

// remove releases one entity then drops its tracking entry; false when untracked
func (r *Registry) remove(e core.Entity) bool {
	for i, o := range r.tracked {
		if o.entity != e {
			continue
		}
		r.release(o)
		r.tracked = append(r.tracked[:i], r.tracked[i+1:]...)
		return true
	}
	return false
}

// RemovePowerUp deletes a power-up entirely
func (r *Registry) RemovePowerUp(e core.Entity) bool {
	if !r.PowerUps.Has(e) {
		return false
	}
	r.remove(e)
	r.PowerUps.Remove(e)
	return true
}

// RemoveCollectible deletes a collectible entirely
func (r *Registry) RemoveCollectible(e core.Entity) bool {
	if !r.Collectibles.Has(e) {
		return false
	}
	r.remove(e)
	r.Collectibles.Remove(e)
	return true
}

// RemoveAll releases every handle in tracking order and clears all collections
// Idempotent and safe with zero entities
func (r *Registry) RemoveAll() {
	n := len(r.tracked)
	for _, o := range r.tracked {
		r.release(o)
	}
	r.tracked = r.tracked[:0]

	r.Marbles.Clear()
	r.Statics.Clear()
	r.Dynamics.Clear()
	r.Platforms.Clear()
	r.Checkpoints.Clear()
	r.Goals.Clear()
	r.PowerUps.Clear()
	r.Collectibles.Clear()
	clear(r.materials)
	clear(r.bodies)
	r.controlled = 0

	if n > 0 {
		r.log.Debug().Int("entities", n).Msg("Level entities released")
	}
}

// Tracked returns the number of entities holding engine handles
func (r *Registry) Tracked() int {
	return len(r.tracked)
}

// MaterialOf returns the surface tag of a level body
func (r *Registry) MaterialOf(h physics.Handle) (component.Material, bool) {
	m, ok := r.materials[h]
	return m, ok
}

// EntityOf maps a physics handle back to its entity
func (r *Registry) EntityOf(h physics.Handle) (core.Entity, bool) {
	e, ok := r.bodies[h]
	return e, ok
}

// Controlled returns the marble receiving input
func (r *Registry) Controlled() (core.Entity, *component.MarbleComponent, bool) {
	if r.controlled == 0 {
		return 0, nil, false
	}
	m, ok := r.Marbles.Get(r.controlled)
	if !ok {
		return 0, nil, false
	}
	return r.controlled, m, true
}

// SetControlled hands input to a marble, false for non-marbles
func (r *Registry) SetControlled(e core.Entity) bool {
	if !r.Marbles.Has(e) {
		return false
	}
	r.controlled = e
	return true
}

// CycleControlled moves control to the next marble in spawn order, wrapping
func (r *Registry) CycleControlled() (core.Entity, bool) {
	marbles := r.Marbles.order
	if len(marbles) == 0 {
		return 0, false
	}
	next := marbles[0]
	for i, e := range marbles {
		if e == r.controlled {
			next = marbles[(i+1)%len(marbles)]
			break
		}
	}
	r.controlled = next
	return next, true
}
