package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

var down = mgl64.Vec3{0, -1, 0}

// resolveGround refreshes grounded state, surface material, landing impacts and roll audio
func (s *Simulation) resolveGround(e core.Entity, m *component.MarbleComponent, st physics.BodyState, controlled bool, now time.Time) {
	wasGrounded := m.Grounded
	hit, grounded := s.phys.CastRay(st.Position, down, m.Radius+parameter.GroundReach, true, m.Body)
	m.Grounded = grounded

	if !grounded {
		if m.Rolling {
			s.stopRoll(e, m)
		}
		return
	}

	if st.Linvel.Y() <= 0 {
		m.JumpsUsed = 0
	}
	if controlled && s.Controls.StompArmed {
		s.stompBlast(e, st.Position)
	}

	if material, ok := s.reg.MaterialOf(hit.Body); ok {
		m.Surface = material
	} else if s.isMarble(hit.Body) {
		m.Surface = component.MaterialMarble
	}

	// Landing speed is the downward velocity carried into the ground
	if !wasGrounded {
		speed := -m.LastVelocity.Y()
		if speed >= parameter.ImpactMinSpeed && now.Sub(m.LastImpact) >= parameter.ImpactCooldown {
			m.LastImpact = now
			s.emit(event.EventImpact, &event.ImpactPayload{
				Velocity: speed,
				Radius:   m.Radius,
				Material: m.Surface,
				Key:      m.Name,
			})
		}
	}

	speed := vmath.V3Horizontal(st.Linvel).Len()
	payload := &event.RollPayload{Marble: e, Radius: m.Radius, Material: m.Surface, Speed: speed}
	switch {
	case speed >= parameter.RollMinSpeed && !m.Rolling:
		m.Rolling = true
		s.emit(event.EventRollStart, payload)
	case speed >= parameter.RollMinSpeed:
		s.emit(event.EventRollUpdate, payload)
	case m.Rolling:
		s.stopRoll(e, m)
	}
}

func (s *Simulation) stopRoll(e core.Entity, m *component.MarbleComponent) {
	m.Rolling = false
	s.emit(event.EventRollStop, &event.RollPayload{Marble: e, Radius: m.Radius, Material: m.Surface})
}

func (s *Simulation) isMarble(h physics.Handle) bool {
	e, ok := s.reg.EntityOf(h)
	return ok && s.reg.Marbles.Has(e)
}
