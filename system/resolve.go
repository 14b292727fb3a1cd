package system

import (
	"time"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
)

// resolve evaluates gameplay rules against the post-step physics state
// Per marble: floor, ground and surface, checkpoints, goals; then completion,
// pickups and hit scoring for the controlled marble
func (s *Simulation) resolve(now time.Time) {
	ctrl, _, _ := s.reg.Controlled()

	s.reg.Marbles.Each(func(e core.Entity, m *component.MarbleComponent) {
		st, ok := s.phys.State(m.Body)
		if !ok {
			return
		}
		if st.Position.Y() < s.session.Floor {
			s.respawn(e, m, e == ctrl)
			return
		}
		s.resolveGround(e, m, st, e == ctrl, now)
		s.resolveCheckpoints(m, st.Position)
		s.resolveGoals(m, st.Position)
		m.LastVelocity = st.Linvel
	})

	s.checkCompletion(now)

	if _, m, st, ok := s.controlled(); ok {
		s.resolvePickups(m, st.Position)
		s.resolveMarbleHits(ctrl, m, st)
	}
}
