package system

import (
	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// resolveMarbleHits scores fast contacts between the controlled marble and the others
// Each ordered pair is scored at most once per cooldown window
func (s *Simulation) resolveMarbleHits(self core.Entity, m *component.MarbleComponent, st physics.BodyState) {
	s.reg.Marbles.Each(func(e core.Entity, other *component.MarbleComponent) {
		if e == self {
			return
		}
		ost, ok := s.phys.State(other.Body)
		if !ok {
			return
		}

		delta := ost.Position.Sub(st.Position)
		if delta.Len() >= m.Radius+other.Radius+parameter.MarbleContactSlack {
			return
		}
		rel := st.Linvel.Sub(ost.Linvel).Len()
		if rel <= parameter.MarbleHitMinSpeed {
			return
		}
		key := hitPair{attacker: self, defender: e}
		if until, ok := s.hitCooldown[key]; ok && s.now.Before(until) {
			return
		}
		s.hitCooldown[key] = s.now.Add(parameter.MarbleHitCooldown)

		score := int(rel)
		s.session.AddScore(score)

		s.emit(event.EventImpact, &event.ImpactPayload{
			Velocity: rel, Radius: m.Radius, Material: component.MaterialMarble, Key: "hit:" + m.Name,
		})
		s.emit(event.EventImpact, &event.ImpactPayload{
			Velocity: rel, Radius: other.Radius, Material: component.MaterialMarble, Key: "hit:" + other.Name,
		})

		push := vmath.V3Normalize(delta).Mul(rel * parameter.MarbleHitPush).Add(vmath.Up.Mul(parameter.MarbleHitLift))
		s.phys.ApplyImpulse(other.Body, push)

		s.emit(event.EventMarbleHit, &event.MarbleHitPayload{
			Attacker: m.Name,
			Defender: other.Name,
			Speed:    rel,
			Score:    score,
		})
	})
}
