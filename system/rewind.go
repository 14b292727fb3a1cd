package system

import (
	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/render"
)

// updateRewind either replays one frame backward or records the current one
// Returns true while rewind is held, which suppresses player intents
func (s *Simulation) updateRewind(in input.Intent) bool {
	c := &s.Controls
	_, m, st, ok := s.controlled()
	if !ok {
		c.Rewinding = false
		return in.Rewind
	}

	if !in.Rewind {
		c.Rewinding = false
		if m.Tinted {
			s.reg.Renderer().SetColor(m.Render, m.Color)
			m.Tinted = false
		}
		s.history.Push(component.FrameFromState(st))
		return false
	}

	c.Rewinding = true
	frame, ok := s.history.Pop()
	if !ok {
		return true
	}
	s.phys.SetTranslation(m.Body, frame.Position)
	s.phys.SetRotation(m.Body, frame.Rotation)
	s.phys.SetLinvel(m.Body, frame.Linvel)
	s.phys.SetAngvel(m.Body, frame.Angvel)
	if !m.Tinted {
		s.reg.Renderer().SetColor(m.Render, render.RGBRewind)
		m.Tinted = true
	}
	s.metrics.RewindFrame()
	return true
}
