package system

import (
	"github.com/lixenwraith/marble-sandbox/audio"
	"github.com/lixenwraith/marble-sandbox/event"
)

// AudioBridge turns feedback events into player calls
type AudioBridge struct {
	player audio.Player
}

var _ event.Handler = (*AudioBridge)(nil)

// NewAudioBridge wraps p in a Guard so a missing player is a no-op
func NewAudioBridge(p audio.Player) *AudioBridge {
	if _, ok := p.(*audio.Guard); !ok {
		p = audio.NewGuard(p)
	}
	return &AudioBridge{player: p}
}

func (b *AudioBridge) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventImpact,
		event.EventRollStart,
		event.EventRollUpdate,
		event.EventRollStop,
		event.EventGoalChime,
		event.EventBoostWhoosh,
		event.EventCollectChime,
	}
}

func (b *AudioBridge) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventImpact:
		if p, ok := ev.Payload.(*event.ImpactPayload); ok {
			b.player.Impact(p.Velocity, p.Radius, p.Material, p.Key)
		}
	case event.EventRollStart:
		if p, ok := ev.Payload.(*event.RollPayload); ok {
			b.player.RollStart(p.Marble, p.Radius, p.Material, p.Speed)
		}
	case event.EventRollUpdate:
		if p, ok := ev.Payload.(*event.RollPayload); ok {
			b.player.RollUpdate(p.Marble, p.Radius, p.Material, p.Speed)
		}
	case event.EventRollStop:
		if p, ok := ev.Payload.(*event.RollPayload); ok {
			b.player.RollStop(p.Marble)
		}
	case event.EventGoalChime:
		b.player.GoalChime()
	case event.EventBoostWhoosh:
		b.player.BoostWhoosh()
	case event.EventCollectChime:
		b.player.CollectChime()
	}
}
