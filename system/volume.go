package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/render"
)

// resolveCheckpoints activates each untouched checkpoint the marble overlaps
// Activation is one-shot per attempt; the activating marble adopts its respawn point
func (s *Simulation) resolveCheckpoints(m *component.MarbleComponent, pos mgl64.Vec3) {
	s.reg.Checkpoints.Each(func(e core.Entity, cp *component.CheckpointComponent) {
		if cp.Activated || !cp.Region.OverlapsSphere(pos, m.Radius) {
			return
		}
		cp.Activated = true
		m.Respawn = cp.RespawnPoint(parameter.CheckpointLift, pos)
		s.reg.Renderer().SetColor(cp.Render, render.RGBActivated)

		s.emit(event.EventGoalChime, nil)
		s.emit(event.EventCheckpoint, &event.CheckpointPayload{
			Checkpoint: cp.ID,
			Marble:     m.Name,
			Respawn:    m.Respawn,
			Entity:     e,
		})
		s.log.Info().Int("checkpoint", cp.ID).Str("marble", m.Name).Msg("Checkpoint activated")
	})
}

// resolveGoals scores every goal whose range contains the marble center
func (s *Simulation) resolveGoals(m *component.MarbleComponent, pos mgl64.Vec3) {
	s.reg.Goals.Each(func(_ core.Entity, g *component.GoalComponent) {
		if m.HasScored(g.ID) || !g.Region.ContainsPoint(pos) {
			return
		}
		m.MarkScored(g.ID)
		s.session.AddScore(1)

		s.emit(event.EventGoalChime, nil)
		s.emit(event.EventGoalScored, &event.GoalPayload{Goal: g.ID, Marble: m.Name, Score: s.session.Score})
		s.metrics.Goal(s.session.LevelName)
		s.log.Info().Int("goal", g.ID).Str("marble", m.Name).Int("score", s.session.Score).Msg("Goal scored")
	})
}

// checkCompletion latches completion once every goal id is covered by some live marble
// A level without goals never completes
func (s *Simulation) checkCompletion(now time.Time) {
	if s.session.Complete || s.reg.Goals.Len() == 0 {
		return
	}

	covered := make(map[int]string)
	s.reg.Marbles.Each(func(_ core.Entity, m *component.MarbleComponent) {
		for id := range m.Scored {
			if _, ok := covered[id]; !ok {
				covered[id] = m.Name
			}
		}
	})

	goals := make(map[int]string, s.reg.Goals.Len())
	complete := true
	s.reg.Goals.Each(func(_ core.Entity, g *component.GoalComponent) {
		name, ok := covered[g.ID]
		if !ok {
			complete = false
			return
		}
		goals[g.ID] = name
	})
	if !complete || !s.session.MarkComplete(now) {
		return
	}

	var marble string
	if _, m, ok := s.reg.Controlled(); ok {
		marble = m.Name
	}
	elapsed := s.session.Elapsed(now)
	s.emit(event.EventLevelComplete, &event.LevelCompletePayload{
		Level:   s.session.LevelName,
		Score:   s.session.Score,
		Seconds: elapsed,
		Goals:   goals,
		Marble:  marble,
	})
	s.log.Info().Str("level", s.session.LevelName).Int("score", s.session.Score).
		Float64("seconds", elapsed).Msg("Level complete")
}
