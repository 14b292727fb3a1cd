package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/marble-sandbox/audio"
	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/engine"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/level"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/record"
	"github.com/lixenwraith/marble-sandbox/render"
	"github.com/lixenwraith/marble-sandbox/spectator"
	"github.com/lixenwraith/marble-sandbox/system"
)

var _ level.WorldBuilder = (*engine.Registry)(nil)

// RunSink receives finished runs; record.Store queues them for the database
type RunSink interface {
	Submit(run record.Run) bool
}

// SnapshotSink receives one frame per tick; spectator.Hub broadcasts them
type SnapshotSink interface {
	Offer(s spectator.Snapshot)
}

// Game owns level transitions around the simulation
// Single-threaded: every method runs on the game loop goroutine
type Game struct {
	sim     *system.Simulation
	reg     *engine.Registry
	session *engine.Session
	router  *event.Router

	levels  []level.Definition
	marbles []component.MarbleSpec

	audio     *audio.Guard
	runs      RunSink
	spectator SnapshotSink
	log       zerolog.Logger

	advanceAt time.Time // Zero unless a completed level is waiting to advance
}

type Option func(*Game)

func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithAudio routes sound events to p
func WithAudio(p audio.Player) Option {
	return func(g *Game) {
		if guard, ok := p.(*audio.Guard); ok {
			g.audio = guard
			return
		}
		g.audio = audio.NewGuard(p)
	}
}

func WithRuns(s RunSink) Option {
	return func(g *Game) { g.runs = s }
}

func WithSpectator(s SnapshotSink) Option {
	return func(g *Game) { g.spectator = s }
}

// WithMarbles overrides the marble set spawned into every level
func WithMarbles(specs []component.MarbleSpec) Option {
	return func(g *Game) { g.marbles = specs }
}

// New wires a game around sim; queue must be the queue sim emits into
func New(sim *system.Simulation, queue *event.EventQueue, levels []level.Definition, opts ...Option) *Game {
	g := &Game{
		sim:     sim,
		reg:     sim.Registry(),
		session: sim.Session(),
		router:  event.NewRouter(queue),
		levels:  levels,
		marbles: level.Marbles(),
		audio:   audio.NewGuard(nil),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.router.Register(system.NewAudioBridge(g.audio))
	g.router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventLevelComplete},
		Fn:    g.onComplete,
	})
	g.router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventGoalScored, event.EventCheckpoint},
		Fn:    g.onProgress,
	})
	return g
}

// Levels returns the level names in menu order
func (g *Game) Levels() []string {
	names := make([]string, len(g.levels))
	for i, def := range g.levels {
		names[i] = def.Name
	}
	return names
}

// Load clears the world and builds level index; camera mode persists
func (g *Game) Load(index int, now time.Time) error {
	if index < 0 || index >= len(g.levels) {
		return fmt.Errorf("level %d out of range [0,%d)", index, len(g.levels))
	}
	def := g.levels[index]

	g.reg.RemoveAll()
	if err := level.Build(g.reg, def, g.marbles); err != nil {
		// Unknown zones are skipped; the rest of the level is playable
		g.log.Warn().Err(err).Str("level", def.Name).Msg("Level built with errors")
	}
	g.session.Reset(index, def.Name, def.Description, now, def.FloorY())
	g.sim.Reset()
	g.advanceAt = time.Time{}

	g.log.Info().Int("index", index).Str("level", def.Name).Int("entities", g.reg.Tracked()).Msg("Level loaded")
	return nil
}

// ReturnToMenu clears the level and pauses the simulation
func (g *Game) ReturnToMenu() {
	g.reg.RemoveAll()
	g.sim.Reset()
	g.session.Menu = true
	g.session.Complete = false
	g.advanceAt = time.Time{}
	g.log.Info().Msg("Returned to menu")
}

// Step applies session intents, ticks the simulation and dispatches events
// Returns false once quit is requested
func (g *Game) Step(now time.Time, in input.Intent) bool {
	if in.Quit {
		return false
	}
	if in.ToggleMute {
		muted := g.audio.ToggleMute()
		g.log.Info().Bool("muted", muted).Msg("Audio mute toggled")
	}
	if in.Menu && !g.session.Menu {
		g.ReturnToMenu()
		return true
	}
	if in.Select > 0 {
		if err := g.Load(in.Select-1, now); err != nil {
			g.log.Debug().Err(err).Msg("Level select ignored")
		}
	}
	if g.session.Menu {
		return true
	}

	if in.Reset {
		g.Load(g.session.LevelIndex, now)
	}
	if in.ToggleCamera {
		mode := g.session.CycleCamera()
		g.log.Debug().Str("camera", mode.String()).Msg("Camera mode")
	}

	g.sim.Tick(now, in)
	g.router.DispatchAll()

	if !g.advanceAt.IsZero() && !now.Before(g.advanceAt) {
		g.advance(now)
	}

	if g.spectator != nil && !g.session.Menu {
		g.spectator.Offer(g.Snapshot())
	}
	return true
}

// advance loads the next level, the menu after the last one
func (g *Game) advance(now time.Time) {
	next := g.session.LevelIndex + 1
	if next >= len(g.levels) {
		g.ReturnToMenu()
		return
	}
	g.Load(next, now)
}

func (g *Game) onComplete(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.LevelCompletePayload)
	if !ok {
		return
	}
	g.advanceAt = ev.Time.Add(parameter.AdvanceDelay)
	g.log.Info().Str("level", p.Level).Int("score", p.Score).Float64("seconds", p.Seconds).Msg("Level complete")

	if g.runs == nil {
		return
	}
	run, err := record.NewRun(p)
	if err != nil {
		g.log.Warn().Err(err).Msg("Run not recorded")
		return
	}
	g.runs.Submit(run)
}

func (g *Game) onProgress(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.GoalPayload:
		g.log.Info().Int("goal", p.Goal).Str("marble", p.Marble).Msg("Goal scored")
	case *event.CheckpointPayload:
		g.log.Info().Int("checkpoint", p.Checkpoint).Str("marble", p.Marble).Msg("Checkpoint reached")
	}
}

// View returns the HUD view including the level menu
func (g *Game) View() render.View {
	v := g.sim.View()
	v.Levels = g.Levels()
	return v
}

// Snapshot exports marble positions for spectators
func (g *Game) Snapshot() spectator.Snapshot {
	s := spectator.Snapshot{
		Tick:     g.sim.TickCount(),
		Level:    g.session.LevelName,
		Score:    g.session.Score,
		Complete: g.session.Complete,
	}
	ctrl, _, _ := g.reg.Controlled()
	phys := g.reg.Physics()
	for _, e := range g.reg.Marbles.Entities() {
		m, ok := g.reg.Marbles.Get(e)
		if !ok {
			continue
		}
		st, ok := phys.State(m.Body)
		if !ok {
			continue
		}
		s.Marbles = append(s.Marbles, spectator.MarbleState{
			Name:       m.Name,
			Position:   st.Position,
			Controlled: e == ctrl,
		})
	}
	return s
}

// Pending reports whether a level advance is scheduled
func (g *Game) Pending() bool {
	return !g.advanceAt.IsZero()
}
