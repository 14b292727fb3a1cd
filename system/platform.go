package system

import (
	"time"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
)

// updatePlatforms schedules each kinematic body at motion(seconds since level start)
func (s *Simulation) updatePlatforms(now time.Time) {
	t := s.session.Elapsed(now)
	s.reg.Platforms.Each(func(_ core.Entity, p *component.PlatformComponent) {
		if p.Motion == nil {
			return
		}
		pos, rot := p.Motion(t)
		s.phys.SetKinematicTarget(p.Body, pos, rot)
	})
}
