package engine

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// opLog records release calls across both collaborators
type opLog struct {
	ops []string
}

type loggingWorld struct {
	*physics.World
	log *opLog
}

func (w *loggingWorld) RemoveBody(h physics.Handle) bool {
	w.log.ops = append(w.log.ops, fmt.Sprintf("body:%d", h))
	return w.World.RemoveBody(h)
}

type loggingRenderer struct {
	*render.Recorder
	log *opLog
}

func (r *loggingRenderer) Destroy(h render.Handle) {
	r.log.ops = append(r.log.ops, fmt.Sprintf("draw:%d", h))
	r.Recorder.Destroy(h)
}

func newTestRegistry() (*Registry, *physics.World, *render.Recorder, *opLog) {
	log := &opLog{}
	world := physics.NewWorld()
	rec := render.NewRecorder()
	reg := NewRegistry(&loggingWorld{World: world, log: log}, &loggingRenderer{Recorder: rec, log: log}, zerolog.Nop())
	return reg, world, rec, log
}

func boxSpec(pos mgl64.Vec3) component.BodySpec {
	return component.BodySpec{
		Shape:    physics.ShapeBox,
		Position: pos,
		Rotation: mgl64.QuatIdent(),
		Size:     mgl64.Vec3{1, 1, 1},
		Material: component.MaterialWood,
	}
}

func populate(reg *Registry) {
	reg.SpawnMarble(component.MarbleSpec{Name: "a", Radius: 0.5, Position: mgl64.Vec3{0, 2, 0}, Light: true})
	reg.SpawnStatic(boxSpec(mgl64.Vec3{}))
	reg.SpawnDynamic(boxSpec(mgl64.Vec3{3, 1, 0}))
	reg.SpawnKinematic(boxSpec(mgl64.Vec3{}), component.Spin(mgl64.Vec3{0, 1, 5}, mgl64.QuatIdent(), 1))
	reg.SpawnCheckpoint(1, vmath.AABBFromCenter(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1}), nil)
	reg.SpawnGoal(1, vmath.AABBFromSpans([2]float64{-1, 1}, vmath.Unbounded, [2]float64{20, 22}))
	reg.SpawnPowerUp(mgl64.Vec3{0, 1, 3}, component.EffectSpeed)
	reg.SpawnCollectible(mgl64.Vec3{0, 1, 4})
}

func TestRemoveAllReleasesEverything(t *testing.T) {
	reg, world, rec, _ := newTestRegistry()
	populate(reg)

	if world.Len() == 0 || rec.Live() == 0 {
		t.Fatal("Expected populated engines")
	}

	reg.RemoveAll()

	if world.Len() != 0 {
		t.Errorf("Expected no physics bodies, got %d", world.Len())
	}
	if rec.Live() != 0 {
		t.Errorf("Expected no drawables, got %d", rec.Live())
	}
	if reg.Tracked() != 0 || reg.Marbles.Len() != 0 || reg.Goals.Len() != 0 {
		t.Error("Expected every collection cleared")
	}
	if _, _, ok := reg.Controlled(); ok {
		t.Error("Expected no controlled marble after teardown")
	}
}

func TestRemoveAllIdempotent(t *testing.T) {
	reg, _, _, log := newTestRegistry()

	// Empty teardown is a no-op
	reg.RemoveAll()
	if len(log.ops) != 0 {
		t.Errorf("Expected no releases on empty registry, got %v", log.ops)
	}

	populate(reg)
	reg.RemoveAll()
	n := len(log.ops)
	reg.RemoveAll()
	if len(log.ops) != n {
		t.Errorf("Expected second teardown to release nothing, got %v", log.ops[n:])
	}
}

func TestRemoveAllOrder(t *testing.T) {
	reg, _, _, log := newTestRegistry()
	m := reg.SpawnMarble(component.MarbleSpec{Name: "a", Radius: 0.5})
	s := reg.SpawnStatic(boxSpec(mgl64.Vec3{}))

	mc, _ := reg.Marbles.Get(m)
	sc, _ := reg.Statics.Get(s)

	reg.RemoveAll()

	expected := []string{
		fmt.Sprintf("body:%d", mc.Body),
		fmt.Sprintf("draw:%d", mc.Render),
		fmt.Sprintf("body:%d", sc.Body),
		fmt.Sprintf("draw:%d", sc.Render),
	}
	if len(log.ops) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, log.ops)
	}
	for i := range expected {
		if log.ops[i] != expected[i] {
			t.Errorf("Expected op %d to be %s, got %s", i, expected[i], log.ops[i])
		}
	}
}

func TestRemovePowerUpEntirely(t *testing.T) {
	reg, world, rec, _ := newTestRegistry()
	e := reg.SpawnPowerUp(mgl64.Vec3{0, 1, 0}, component.EffectJump)
	pu, _ := reg.PowerUps.Get(e)

	if !reg.RemovePowerUp(e) {
		t.Fatal("Expected removal to succeed")
	}
	if world.Contains(pu.Body) {
		t.Error("Expected physics body released")
	}
	if _, ok := rec.Get(pu.Render); ok {
		t.Error("Expected drawable released")
	}
	if reg.PowerUps.Has(e) || reg.Tracked() != 0 {
		t.Error("Expected bookkeeping removed")
	}
	if reg.RemovePowerUp(e) {
		t.Error("Expected second removal to report false")
	}
}

func TestRemoveCollectible(t *testing.T) {
	reg, world, _, _ := newTestRegistry()
	e := reg.SpawnCollectible(mgl64.Vec3{0, 1, 0})
	c, _ := reg.Collectibles.Get(e)

	if !reg.RemoveCollectible(e) {
		t.Fatal("Expected removal to succeed")
	}
	if world.Contains(c.Body) || reg.Collectibles.Len() != 0 {
		t.Error("Expected collectible fully removed")
	}
}

func TestControlledCycle(t *testing.T) {
	reg, _, _, _ := newTestRegistry()

	if _, ok := reg.CycleControlled(); ok {
		t.Error("Expected cycle without marbles to be a no-op")
	}

	a := reg.SpawnMarble(component.MarbleSpec{Name: "a", Radius: 0.5})
	b := reg.SpawnMarble(component.MarbleSpec{Name: "b", Radius: 0.5})

	if e, _, _ := reg.Controlled(); e != a {
		t.Errorf("Expected first marble controlled, got %d", e)
	}
	if e, _ := reg.CycleControlled(); e != b {
		t.Errorf("Expected cycle to b, got %d", e)
	}
	if e, _ := reg.CycleControlled(); e != a {
		t.Errorf("Expected cycle to wrap to a, got %d", e)
	}
	if reg.SetControlled(9999) {
		t.Error("Expected unknown entity to be rejected")
	}
}

func TestMaterialLookup(t *testing.T) {
	reg, _, _, _ := newTestRegistry()
	e := reg.SpawnStatic(boxSpec(mgl64.Vec3{}))
	s, _ := reg.Statics.Get(e)

	m, ok := reg.MaterialOf(s.Body)
	if !ok || m != component.MaterialWood {
		t.Errorf("Expected wood, got %q ok=%v", m, ok)
	}
	if got, _ := reg.EntityOf(s.Body); got != e {
		t.Errorf("Expected entity %d, got %d", e, got)
	}
}

func TestScaleIsExplicit(t *testing.T) {
	reg, _, rec, _ := newTestRegistry()
	spec := boxSpec(mgl64.Vec3{})
	spec.Size = mgl64.Vec3{4, 0.5, 2}
	e := reg.SpawnStatic(spec)
	s, _ := reg.Statics.Get(e)

	if s.Scale != spec.Size {
		t.Errorf("Expected scale %v, got %v", spec.Size, s.Scale)
	}
	d, _ := rec.Get(s.Render)
	if d.Transform.At(0, 0) != 4 || d.Transform.At(1, 1) != 0.5 || d.Transform.At(2, 2) != 2 {
		t.Errorf("Expected transform diagonal (4,0.5,2), got %v", d.Transform)
	}
}

func TestKinematicStartsAtMotionOrigin(t *testing.T) {
	reg, world, _, _ := newTestRegistry()
	e := reg.SpawnKinematic(boxSpec(mgl64.Vec3{}), component.Oscillate(mgl64.Vec3{5, 1, 0}, mgl64.QuatIdent(), mgl64.Vec3{1, 0, 0}, 2, 1, 0))
	p, _ := reg.Platforms.Get(e)
	st, _ := world.State(p.Body)
	if !st.Position.ApproxEqual(mgl64.Vec3{5, 1, 0}) {
		t.Errorf("Expected platform at motion(0), got %v", st.Position)
	}
}
