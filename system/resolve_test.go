package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/audio"
	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/engine"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
	"github.com/lixenwraith/marble-sandbox/status"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

func TestRespawnBelowFloor(t *testing.T) {
	h := newHarness(t, false)
	_, m := h.marble("blue", mgl64.Vec3{0, -25, 0})
	m.Respawn = mgl64.Vec3{0, 8, -12}
	m.MarkScored(3)
	h.eng.SetLinvel(m.Body, mgl64.Vec3{4, -10, 0})
	h.sim.Controls.Grapple = Grapple{Active: true}

	h.tick(input.Intent{})

	st := h.state(m)
	if !st.Position.ApproxEqual(mgl64.Vec3{0, 8, -12}) {
		t.Errorf("Expected respawn at (0,8,-12), got %v", st.Position)
	}
	if !st.Linvel.ApproxEqual(mgl64.Vec3{}) || !st.Angvel.ApproxEqual(mgl64.Vec3{}) {
		t.Errorf("Expected velocities zeroed, got %v %v", st.Linvel, st.Angvel)
	}
	if len(m.Scored) != 0 {
		t.Errorf("Expected scored set cleared, got %v", m.Scored)
	}
	if h.sim.Controls.Grapple.Active {
		t.Error("Expected respawn to drop the grapple")
	}

	evs := h.events(event.EventRespawn)
	if len(evs) != 1 {
		t.Fatalf("Expected one respawn event, got %d", len(evs))
	}
	if p := evs[0].Payload.(*event.RespawnPayload); p.Marble != "blue" {
		t.Errorf("Expected respawn of blue, got %q", p.Marble)
	}
}

func TestRespawnCountsMetric(t *testing.T) {
	h := newHarness(t, false)
	metrics := status.NopMetrics()
	h.sim = NewSimulation(h.reg, h.session, h.queue, WithMetrics(metrics))
	h.marble("blue", mgl64.Vec3{0, -30, 0})

	h.tick(input.Intent{})
	if got := metrics.Local.Value(status.KeyRespawns); got != 1 {
		t.Errorf("Expected one respawn counted, got %d", got)
	}
	if got := metrics.Local.Value(status.KeyTicks); got != 1 {
		t.Errorf("Expected one tick counted, got %d", got)
	}
}

func TestCheckpointMovesRespawn(t *testing.T) {
	h := newHarness(t, false)
	_, m := h.marble("blue", mgl64.Vec3{0, 3, 40})
	respawn := mgl64.Vec3{0, 5, 40}
	cpEntity := h.reg.SpawnCheckpoint(1, vmath.AABBFromCenter(mgl64.Vec3{0, 3, 40}, mgl64.Vec3{2, 2, 2}), &respawn)

	h.tick(input.Intent{})
	if m.Respawn != respawn {
		t.Fatalf("Expected respawn (0,5,40), got %v", m.Respawn)
	}
	cp, _ := h.reg.Checkpoints.Get(cpEntity)
	if !cp.Activated {
		t.Error("Expected checkpoint activated")
	}
	if d, _ := h.render.Get(cp.Render); d.Color != render.RGBActivated {
		t.Errorf("Expected activated color, got %v", d.Color)
	}

	h.eng.SetTranslation(m.Body, mgl64.Vec3{0, -40, 40})
	h.tick(input.Intent{})
	if p := h.state(m).Position; !p.ApproxEqual(respawn) {
		t.Errorf("Expected respawn at checkpoint, got %v", p)
	}
}

func TestCheckpointWithoutCeilingRespawnsFinite(t *testing.T) {
	h := newHarness(t, false)
	_, m := h.marble("blue", mgl64.Vec3{0, 3, 40})
	h.reg.SpawnCheckpoint(2, vmath.AABB{
		Min: mgl64.Vec3{-2, math.Inf(-1), 38},
		Max: mgl64.Vec3{2, math.Inf(1), 42},
	}, nil)

	h.tick(input.Intent{})
	if math.IsInf(m.Respawn.Y(), 0) || m.Respawn.Y() < 3 {
		t.Fatalf("Expected finite respawn above entry height, got %v", m.Respawn)
	}

	h.eng.SetTranslation(m.Body, mgl64.Vec3{0, -40, 40})
	h.tick(input.Intent{})
	p := h.state(m).Position
	if math.IsInf(p.Y(), 0) || p.Y() < 3 {
		t.Errorf("Expected marble back above the floor, got %v", p)
	}
}

func TestCheckpointOneShot(t *testing.T) {
	h := newHarness(t, false)
	_, blue := h.marble("blue", mgl64.Vec3{0, 0, 0})
	_, red := h.marble("red", mgl64.Vec3{0, 0, 1})
	h.reg.SpawnCheckpoint(7, vmath.AABBFromCenter(mgl64.Vec3{}, mgl64.Vec3{3, 3, 3}), nil)

	h.ticks(5, input.Intent{})
	if n := len(h.events(event.EventCheckpoint)); n != 1 {
		t.Fatalf("Expected single activation, got %d", n)
	}
	// Default point sits above the top face
	expected := mgl64.Vec3{0, 3 + parameter.CheckpointLift, 0}
	if blue.Respawn != expected {
		t.Errorf("Expected first marble to adopt %v, got %v", expected, blue.Respawn)
	}
	if red.Respawn != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Expected second marble to keep its spawn, got %v", red.Respawn)
	}
}

func goalRegion(x float64) vmath.AABB {
	return vmath.AABBFromSpans([2]float64{x - 1, x + 1}, vmath.Unbounded, [2]float64{-1, 1})
}

func TestCompletionUnionOfMarbles(t *testing.T) {
	h := newHarness(t, false)
	h.marble("blue", mgl64.Vec3{10, 50, 0})
	_, red := h.marble("red", mgl64.Vec3{0, 0, 0})
	h.reg.SpawnGoal(1, goalRegion(10))
	h.reg.SpawnGoal(2, goalRegion(-10))

	h.ticks(2, input.Intent{})
	if h.session.Complete {
		t.Fatal("Expected incomplete with one goal covered")
	}
	if h.session.Score != 1 {
		t.Errorf("Expected score 1, got %d", h.session.Score)
	}
	h.events(event.EventLevelComplete)

	h.eng.SetTranslation(red.Body, mgl64.Vec3{-10, 0, 0})
	h.tick(input.Intent{})
	if !h.session.Complete {
		t.Fatal("Expected completion once both goals are covered")
	}

	h.ticks(3, input.Intent{})
	evs := h.events(event.EventLevelComplete)
	if len(evs) != 1 {
		t.Fatalf("Expected completion to fire once, got %d", len(evs))
	}
	p := evs[0].Payload.(*event.LevelCompletePayload)
	if p.Goals[1] != "blue" || p.Goals[2] != "red" {
		t.Errorf("Expected goal owners blue/red, got %v", p.Goals)
	}
	if p.Marble != "blue" || p.Score != 2 {
		t.Errorf("Expected controlled blue with score 2, got %+v", p)
	}
}

func TestGoalScoresOncePerMarble(t *testing.T) {
	h := newHarness(t, false)
	_, m := h.marble("blue", mgl64.Vec3{})
	h.reg.SpawnGoal(1, goalRegion(0))
	h.reg.SpawnGoal(2, goalRegion(50))

	h.ticks(10, input.Intent{})
	if h.session.Score != 1 {
		t.Errorf("Expected a single goal point, got %d", h.session.Score)
	}
	if !m.HasScored(1) {
		t.Error("Expected goal 1 in scored set")
	}
	if n := len(h.events(event.EventGoalScored)); n != 1 {
		t.Errorf("Expected one score event, got %d", n)
	}
}

func TestNoGoalsNeverComplete(t *testing.T) {
	h := newHarness(t, false)
	h.marble("blue", mgl64.Vec3{})

	h.ticks(10, input.Intent{})
	if h.session.Complete {
		t.Error("Expected level without goals to stay incomplete")
	}
}

func TestPowerUpPickup(t *testing.T) {
	h := newHarness(t, false)
	h.marble("blue", mgl64.Vec3{})
	h.reg.SpawnPowerUp(mgl64.Vec3{1, 0, 0}, component.EffectJump)
	h.reg.SpawnPowerUp(mgl64.Vec3{5, 0, 0}, component.EffectSpeed)

	h.tick(input.Intent{})
	now := h.clock.Now()

	expiry, ok := h.sim.Effects().Expiry(component.EffectJump)
	if !ok || !expiry.Equal(now.Add(parameter.PowerUpDuration)) {
		t.Errorf("Expected jump effect until now+10s, got %v ok=%v", expiry, ok)
	}
	if h.sim.Effects().Active(component.EffectSpeed, now) {
		t.Error("Expected distant power-up untouched")
	}
	if n := h.reg.PowerUps.Len(); n != 1 {
		t.Errorf("Expected one power-up left, got %d", n)
	}

	// Expires at exactly the stored instant
	if !h.sim.Effects().Active(component.EffectJump, expiry.Add(-1)) {
		t.Error("Expected effect active just before expiry")
	}
	if h.sim.Effects().Active(component.EffectJump, expiry) {
		t.Error("Expected effect inactive at expiry")
	}
}

func TestCollectiblePickup(t *testing.T) {
	h := newHarness(t, false)
	h.marble("blue", mgl64.Vec3{})
	h.reg.SpawnCollectible(mgl64.Vec3{0, 0, 1})
	h.reg.SpawnCollectible(mgl64.Vec3{0, 0, 8})

	h.tick(input.Intent{})
	if h.session.Score != parameter.CollectibleScore {
		t.Errorf("Expected score %d, got %d", parameter.CollectibleScore, h.session.Score)
	}
	if n := h.reg.Collectibles.Len(); n != 1 {
		t.Errorf("Expected one collectible left, got %d", n)
	}
	if n := len(h.events(event.EventCollectChime)); n != 1 {
		t.Errorf("Expected one collect chime, got %d", n)
	}
}

// setupHit places red just outside physics contact, with blue sliding past at 9.5
func setupHit(h *harness, blue, red *component.MarbleComponent) {
	h.eng.SetTranslation(blue.Body, mgl64.Vec3{})
	h.eng.SetTranslation(red.Body, mgl64.Vec3{1.05, 0, 0})
	h.eng.SetLinvel(blue.Body, mgl64.Vec3{0, 0, 9.5})
	h.eng.SetLinvel(red.Body, mgl64.Vec3{})
}

func TestMarbleHitScoresWithCooldown(t *testing.T) {
	h := newHarness(t, false)
	_, blue := h.marble("blue", mgl64.Vec3{})
	_, red := h.marble("red", mgl64.Vec3{1.05, 0, 0})

	setupHit(h, blue, red)
	h.tick(input.Intent{})
	if h.session.Score != 9 {
		t.Fatalf("Expected hit score 9, got %d", h.session.Score)
	}
	push, ok := h.eng.last(red.Body)
	if !ok || push.X() <= 0 || push.Y() != parameter.MarbleHitLift {
		t.Errorf("Expected defender pushed away and up, got %v", push)
	}

	var keys []string
	for _, ev := range h.events(event.EventImpact) {
		keys = append(keys, ev.Payload.(*event.ImpactPayload).Key)
	}
	if len(keys) != 2 || keys[0] != "hit:blue" || keys[1] != "hit:red" {
		t.Errorf("Expected impact per side, got %v", keys)
	}

	setupHit(h, blue, red)
	h.tick(input.Intent{})
	if h.session.Score != 9 {
		t.Errorf("Expected cooldown to block rescoring, got %d", h.session.Score)
	}

	h.clock.Advance(parameter.MarbleHitCooldown)
	setupHit(h, blue, red)
	h.tick(input.Intent{})
	if h.session.Score != 18 {
		t.Errorf("Expected rescoring after cooldown, got %d", h.session.Score)
	}
}

func TestSlowContactDoesNotScore(t *testing.T) {
	h := newHarness(t, false)
	_, blue := h.marble("blue", mgl64.Vec3{})
	h.marble("red", mgl64.Vec3{1.05, 0, 0})
	h.eng.SetLinvel(blue.Body, mgl64.Vec3{0, 0, 3})

	h.tick(input.Intent{})
	if h.session.Score != 0 {
		t.Errorf("Expected no score below hit speed, got %d", h.session.Score)
	}
}

func TestPlatformsFollowMotion(t *testing.T) {
	h := newHarness(t, false)
	e := h.reg.SpawnKinematic(component.BodySpec{
		Shape: physics.ShapeBox,
		Size:  mgl64.Vec3{2, 0.25, 2},
	}, func(t float64) (mgl64.Vec3, mgl64.Quat) {
		return mgl64.Vec3{t * 6, 1, 0}, mgl64.QuatIdent()
	})
	p, _ := h.reg.Platforms.Get(e)

	h.ticks(30, input.Intent{})
	st, _ := h.eng.State(p.Body)
	expected := h.session.Elapsed(h.clock.Now()) * 6
	if !approx(st.Position.X(), expected) || !approx(st.Position.Y(), 1) {
		t.Errorf("Expected platform at x=%v, got %v", expected, st.Position)
	}
	if !approx(st.Linvel.X(), 6) {
		t.Errorf("Expected derived velocity 6, got %v", st.Linvel.X())
	}
}

func TestLandingImpact(t *testing.T) {
	h := newHarness(t, true)
	h.floor()
	_, m := h.marble("blue", mgl64.Vec3{0, 3, 0})

	var impacts []*event.ImpactPayload
	for i := 0; i < 120; i++ {
		h.tick(input.Intent{})
		for _, ev := range h.events(event.EventImpact) {
			impacts = append(impacts, ev.Payload.(*event.ImpactPayload))
		}
	}
	if len(impacts) == 0 {
		t.Fatal("Expected a landing impact")
	}
	first := impacts[0]
	if first.Material != component.MaterialStone || first.Key != "blue" {
		t.Errorf("Expected stone impact keyed by marble, got %+v", first)
	}
	if first.Velocity < 6 || first.Velocity > 8 {
		t.Errorf("Expected landing speed near 7, got %v", first.Velocity)
	}
	if !m.Grounded || m.Surface != component.MaterialStone {
		t.Errorf("Expected grounded on stone, got grounded=%v surface=%q", m.Grounded, m.Surface)
	}
}

func TestRollEventsFollowSpeed(t *testing.T) {
	h := newHarness(t, true)
	h.floor()
	_, m := h.marble("blue", mgl64.Vec3{0, 0.5, 0})
	h.ticks(3, input.Intent{})
	h.events(event.EventRollStart)

	h.eng.SetLinvel(m.Body, mgl64.Vec3{4, 0, 0})
	h.tick(input.Intent{})
	if n := len(h.events(event.EventRollStart)); n != 1 || !m.Rolling {
		t.Fatalf("Expected roll start, got %d rolling=%v", n, m.Rolling)
	}

	h.eng.SetLinvel(m.Body, mgl64.Vec3{})
	h.eng.SetAngvel(m.Body, mgl64.Vec3{})
	h.tick(input.Intent{})
	if n := len(h.events(event.EventRollStop)); n != 1 || m.Rolling {
		t.Errorf("Expected roll stop, got %d rolling=%v", n, m.Rolling)
	}
}

func TestAudioBridgeDispatch(t *testing.T) {
	rec := &audio.Recorder{}
	b := NewAudioBridge(rec)

	b.HandleEvent(event.GameEvent{Type: event.EventImpact, Payload: &event.ImpactPayload{
		Velocity: 12, Radius: 0.5, Material: component.MaterialMetal, Key: "blue",
	}})
	b.HandleEvent(event.GameEvent{Type: event.EventRollStart, Payload: &event.RollPayload{Marble: 4, Material: component.MaterialWood}})
	b.HandleEvent(event.GameEvent{Type: event.EventRollStop, Payload: &event.RollPayload{Marble: 4}})
	b.HandleEvent(event.GameEvent{Type: event.EventGoalChime})
	b.HandleEvent(event.GameEvent{Type: event.EventCollectChime})
	b.HandleEvent(event.GameEvent{Type: event.EventBoostWhoosh})
	// Wrong payload type is ignored
	b.HandleEvent(event.GameEvent{Type: event.EventImpact, Payload: "bad"})

	expected := []string{
		"impact blue metal 12.00 0.50",
		"roll-start 4 wood",
		"roll-stop 4",
		"goal-chime",
		"collect-chime",
		"boost-whoosh",
	}
	calls := rec.Calls()
	if len(calls) != len(expected) {
		t.Fatalf("Expected %d calls, got %v", len(expected), calls)
	}
	for i := range expected {
		if calls[i] != expected[i] {
			t.Errorf("Call %d: expected %q, got %q", i, expected[i], calls[i])
		}
	}
}

func TestAudioBridgeNilPlayer(t *testing.T) {
	b := NewAudioBridge(nil)
	b.HandleEvent(event.GameEvent{Type: event.EventGoalChime})
}

func TestPresentPushesTransforms(t *testing.T) {
	h := newHarness(t, false)
	_, blue := h.marble("blue", mgl64.Vec3{})
	_, red := h.marble("red", mgl64.Vec3{3, 0, 0})
	h.eng.SetLinvel(blue.Body, mgl64.Vec3{6, 0, 0})

	h.tick(input.Intent{})
	pos := h.state(blue).Position
	d, _ := h.render.Get(blue.Render)
	if got := d.Transform.Col(3).Vec3(); !got.ApproxEqual(pos) {
		t.Errorf("Expected transform at %v, got %v", pos, got)
	}
	if d.Params[parameter.ParamActive] != 1 {
		t.Error("Expected controlled marble marked active")
	}
	if rd, _ := h.render.Get(red.Render); rd.Params[parameter.ParamActive] != 0 {
		t.Error("Expected other marble inactive")
	}
}

func TestViewCameraModes(t *testing.T) {
	h := newHarness(t, false)
	h.marble("blue", mgl64.Vec3{0, 0, 0})
	h.marble("red", mgl64.Vec3{4, 2, 0})
	h.tick(input.Intent{})

	v := h.sim.View()
	if v.Controlled != "blue" || !v.Camera.ApproxEqual(mgl64.Vec3{}) {
		t.Errorf("Expected chase on blue, got %q at %v", v.Controlled, v.Camera)
	}

	h.session.Camera = engine.CameraOverview
	v = h.sim.View()
	if !v.Camera.ApproxEqual(mgl64.Vec3{2, 1, 0}) {
		t.Errorf("Expected overview at marble mean, got %v", v.Camera)
	}
}
