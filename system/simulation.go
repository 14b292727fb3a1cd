package system

import (
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
	"github.com/lixenwraith/marble-sandbox/status"
)

// Grapple is an attached tether from the controlled marble to a world point
type Grapple struct {
	Active bool
	Target mgl64.Vec3
	Body   physics.Handle
}

// Controls is the ability state of the player for one level attempt
type Controls struct {
	Yaw   float64
	Pitch float64

	Charging bool
	Charge   float64

	JumpCharging bool
	JumpCharge   float64

	Grapple Grapple

	MagnetActive bool
	MagnetPower  float64

	FocusEnergy float64
	TimeScale   float64

	StompArmed bool
	BoostReady time.Time
	Rewinding  bool
}

// reset keeps the view direction and refills every gauge
func (c *Controls) reset() {
	*c = Controls{
		Yaw:         c.Yaw,
		Pitch:       c.Pitch,
		MagnetPower: parameter.MagnetPowerMax,
		FocusEnergy: parameter.FocusEnergyMax,
		TimeScale:   1,
	}
}

// hitPair keys the marble-marble scoring cooldown
type hitPair struct {
	attacker core.Entity
	defender core.Entity
}

// Simulation advances the level one fixed tick at a time
// Single-threaded: every method runs on the game loop goroutine
type Simulation struct {
	reg     *engine.Registry
	phys    physics.Engine
	session *engine.Session
	queue   *event.EventQueue
	history *engine.History[component.RewindFrame]
	effects component.Effects
	metrics *status.Metrics
	log     zerolog.Logger

	Controls Controls

	tick        uint64
	now         time.Time
	hitCooldown map[hitPair]time.Time
}

// Option configures a Simulation
type Option func(*Simulation)

func WithMetrics(m *status.Metrics) Option {
	return func(s *Simulation) { s.metrics = m }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Simulation) { s.log = log }
}

// WithRewindCapacity overrides the rewind buffer length in ticks
func WithRewindCapacity(n int) Option {
	return func(s *Simulation) {
		if n > 0 {
			s.history = engine.NewHistory[component.RewindFrame](n)
		}
	}
}

func NewSimulation(reg *engine.Registry, session *engine.Session, queue *event.EventQueue, opts ...Option) *Simulation {
	s := &Simulation{
		reg:         reg,
		phys:        reg.Physics(),
		session:     session,
		queue:       queue,
		history:     engine.NewHistory[component.RewindFrame](parameter.RewindCapacity),
		log:         zerolog.Nop(),
		hitCooldown: make(map[hitPair]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Controls.reset()
	return s
}

// Reset clears per-attempt state after a level load
func (s *Simulation) Reset() {
	s.Controls.reset()
	s.history.Clear()
	s.effects.Clear()
	clear(s.hitCooldown)
}

// Tick runs one simulation step; the order below is fixed
func (s *Simulation) Tick(now time.Time, in input.Intent) {
	started := time.Now()
	s.tick++
	s.now = now
	s.effects.Prune(now)

	// 1. Time dilation
	dt := s.updateFocus(in)

	// 2. Rewind replaces input and capture for this tick
	s.applyAim(in)
	rewinding := s.updateRewind(in)

	// 3. Player intents
	if !rewinding {
		s.applyDiscrete(in)
		s.applyContinuous(in)
	}

	// 4. Kinematic platforms follow wall-clock level time
	s.updatePlatforms(now)

	// 5. Physics
	s.phys.Step(dt)

	// 6. Resolution
	s.resolve(now)

	// 7. Render push
	s.present(now)

	s.metrics.Tick(time.Since(started))
}

// applyDiscrete handles edge-triggered intents
func (s *Simulation) applyDiscrete(in input.Intent) {
	if in.CycleMarble {
		s.cycleMarble()
	}
	s.updateLaunch(in)
	s.updateJump(in)
	s.updateGrappleFire(in)
	if in.Stomp {
		s.stomp()
	}
	if in.Boost {
		s.boost()
	}
}

// applyContinuous handles held intents, scaled by time dilation
func (s *Simulation) applyContinuous(in input.Intent) {
	s.move(in)
	s.pullGrapple()
	s.updateMagnet(in)
	s.accumulateCharge(in)
}

// cycleMarble hands control to the next marble and drops state tied to the old one
func (s *Simulation) cycleMarble() {
	e, ok := s.reg.CycleControlled()
	if !ok {
		return
	}
	s.history.Clear()
	s.Controls.Charging, s.Controls.Charge = false, 0
	s.Controls.JumpCharging, s.Controls.JumpCharge = false, 0
	s.Controls.Grapple = Grapple{}
	s.Controls.StompArmed = false
	if m, ok := s.reg.Marbles.Get(e); ok {
		s.log.Info().Str("marble", m.Name).Msg("Control switched")
	}
}

// controlled returns the controlled marble with its body state
func (s *Simulation) controlled() (core.Entity, *component.MarbleComponent, physics.BodyState, bool) {
	e, m, ok := s.reg.Controlled()
	if !ok {
		return 0, nil, physics.BodyState{}, false
	}
	st, ok := s.phys.State(m.Body)
	if !ok {
		return 0, nil, physics.BodyState{}, false
	}
	return e, m, st, true
}

// forceScale scales per-tick forces so their effect per simulated second is constant
func (s *Simulation) forceScale() float64 {
	return s.Controls.TimeScale
}

func (s *Simulation) emit(t event.EventType, payload any) {
	s.queue.Push(event.GameEvent{Type: t, Payload: payload, Tick: s.tick, Time: s.now})
}

// History exposes the rewind buffer of the controlled marble
func (s *Simulation) History() *engine.History[component.RewindFrame] {
	return s.history
}

// Effects exposes the active power-up table
func (s *Simulation) Effects() *component.Effects {
	return &s.effects
}

// TickCount returns the number of ticks run since construction
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

func (s *Simulation) Session() *engine.Session {
	return s.session
}

func (s *Simulation) Registry() *engine.Registry {
	return s.reg
}
