package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/parameter"
)

// resolvePickups collects power-ups and collectibles near the controlled marble
func (s *Simulation) resolvePickups(m *component.MarbleComponent, pos mgl64.Vec3) {
	for _, e := range s.reg.PowerUps.Entities() {
		p, ok := s.reg.PowerUps.Get(e)
		if !ok || pos.Sub(p.Position).Len() >= parameter.PowerUpPickupDist {
			continue
		}
		kind := p.Kind
		s.effects.Grant(kind, s.now, parameter.PowerUpDuration)
		s.reg.RemovePowerUp(e)

		s.emit(event.EventCollectChime, nil)
		s.emit(event.EventPickup, &event.PickupPayload{Kind: event.PickupPowerUp, Effect: kind, Marble: m.Name})
		s.metrics.Pickup(kind.String())
		s.log.Debug().Str("effect", kind.String()).Str("marble", m.Name).Msg("Power-up collected")
	}

	for _, e := range s.reg.Collectibles.Entities() {
		c, ok := s.reg.Collectibles.Get(e)
		if !ok || pos.Sub(c.Position).Len() >= parameter.CollectiblePickupDist {
			continue
		}
		s.reg.RemoveCollectible(e)
		s.session.AddScore(parameter.CollectibleScore)

		s.emit(event.EventCollectChime, nil)
		s.emit(event.EventPickup, &event.PickupPayload{
			Kind:   event.PickupCollectible,
			Marble: m.Name,
			Score:  s.session.Score,
		})
		s.metrics.Pickup("collectible")
	}
}
