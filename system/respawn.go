package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/event"
)

// respawn teleports a fallen marble to its current respawn point
// Scored goals reset; the controlled marble also loses rewind history and tethers
func (s *Simulation) respawn(e core.Entity, m *component.MarbleComponent, controlled bool) {
	s.phys.SetTranslation(m.Body, m.Respawn)
	s.phys.SetLinvel(m.Body, mgl64.Vec3{})
	s.phys.SetAngvel(m.Body, mgl64.Vec3{})

	m.ClearScored()
	m.Grounded = false
	m.JumpsUsed = 0
	m.LastVelocity = mgl64.Vec3{}
	if m.Rolling {
		s.stopRoll(e, m)
	}

	if controlled {
		s.history.Clear()
		s.Controls.Grapple = Grapple{}
		s.Controls.StompArmed = false
	}

	s.emit(event.EventRespawn, &event.RespawnPayload{Marble: m.Name, Position: m.Respawn})
	s.metrics.Respawn(m.Name)
	s.log.Info().Str("marble", m.Name).
		Float64("x", m.Respawn.X()).Float64("y", m.Respawn.Y()).Float64("z", m.Respawn.Z()).
		Msg("Marble respawned")
}
