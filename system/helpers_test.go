package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/engine"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
)

// recordingEngine logs impulses on top of the reference world
type recordingEngine struct {
	*physics.World
	impulses map[physics.Handle][]mgl64.Vec3
}

func (r *recordingEngine) ApplyImpulse(h physics.Handle, impulse mgl64.Vec3) {
	r.impulses[h] = append(r.impulses[h], impulse)
	r.World.ApplyImpulse(h, impulse)
}

func (r *recordingEngine) last(h physics.Handle) (mgl64.Vec3, bool) {
	list := r.impulses[h]
	if len(list) == 0 {
		return mgl64.Vec3{}, false
	}
	return list[len(list)-1], true
}

type harness struct {
	t       *testing.T
	sim     *Simulation
	reg     *engine.Registry
	eng     *recordingEngine
	render  *render.Recorder
	queue   *event.EventQueue
	clock   *engine.MockTimeProvider
	session *engine.Session
}

func newHarness(t *testing.T, gravity bool) *harness {
	t.Helper()
	world := physics.NewWorld()
	if !gravity {
		world.Gravity = mgl64.Vec3{}
	}
	eng := &recordingEngine{World: world, impulses: make(map[physics.Handle][]mgl64.Vec3)}
	rec := render.NewRecorder()
	reg := engine.NewRegistry(eng, rec, zerolog.Nop())

	clock := engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	session := engine.NewSession()
	session.Reset(0, "test", "", clock.Now(), parameter.DefaultFloor)

	queue := event.NewEventQueue()
	return &harness{
		t:       t,
		sim:     NewSimulation(reg, session, queue),
		reg:     reg,
		eng:     eng,
		render:  rec,
		queue:   queue,
		clock:   clock,
		session: session,
	}
}

func (h *harness) marble(name string, pos mgl64.Vec3) (core.Entity, *component.MarbleComponent) {
	e := h.reg.SpawnMarble(component.MarbleSpec{Name: name, Radius: 0.5, Position: pos})
	m, _ := h.reg.Marbles.Get(e)
	return e, m
}

// floor adds a wide slab whose top face is y=0
func (h *harness) floor() {
	h.reg.SpawnStatic(component.BodySpec{
		Shape:    physics.ShapeBox,
		Position: mgl64.Vec3{0, -0.5, 0},
		Size:     mgl64.Vec3{50, 0.5, 50},
		Material: component.MaterialStone,
	})
}

func (h *harness) tick(in input.Intent) {
	h.sim.Tick(h.clock.Tick(), in)
}

func (h *harness) ticks(n int, in input.Intent) {
	for i := 0; i < n; i++ {
		h.tick(in)
	}
}

func (h *harness) state(m *component.MarbleComponent) physics.BodyState {
	st, ok := h.eng.State(m.Body)
	if !ok {
		h.t.Fatalf("Expected live body for %s", m.Name)
	}
	return st
}

// events drains the queue and returns those of type t
func (h *harness) events(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range h.queue.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func press() input.Button   { return input.Button{Held: true, Pressed: true} }
func hold() input.Button    { return input.Button{Held: true} }
func release() input.Button { return input.Button{Released: true} }
func tap() input.Button     { return input.Button{Pressed: true, Released: true} }

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
