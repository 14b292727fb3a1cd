package event

import (
	"testing"

	"github.com/lixenwraith/marble-sandbox/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventImpact, Tick: 1})
	q.Push(GameEvent{Type: EventGoalChime, Tick: 2})

	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Tick != 1 || events[1].Tick != 2 {
		t.Errorf("Expected FIFO order, got %v", events)
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("Expected queue drained")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < parameter.EventQueueSize+10; i++ {
		q.Push(GameEvent{Tick: uint64(i)})
	}
	if q.Len() != parameter.EventQueueSize {
		t.Fatalf("Expected %d pending, got %d", parameter.EventQueueSize, q.Len())
	}
	events := q.Consume()
	if events[0].Tick != 10 {
		t.Errorf("Expected oldest surviving tick 10, got %d", events[0].Tick)
	}
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var got []EventType
	r.Register(HandlerFunc{
		Types: []EventType{EventGoalScored, EventLevelComplete},
		Fn:    func(ev GameEvent) { got = append(got, ev.Type) },
	})

	q.Push(GameEvent{Type: EventGoalScored})
	q.Push(GameEvent{Type: EventImpact})
	q.Push(GameEvent{Type: EventLevelComplete})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 events consumed, got %d", n)
	}
	if len(got) != 2 || got[0] != EventGoalScored || got[1] != EventLevelComplete {
		t.Errorf("Expected goal then complete, got %v", got)
	}
	if r.HandlerCount(EventImpact) != 0 {
		t.Error("Expected no impact handlers")
	}
}

func TestEventNames(t *testing.T) {
	if EventLevelComplete.String() != "level_complete" {
		t.Errorf("Expected level_complete, got %s", EventLevelComplete.String())
	}
	if !EventRollStop.IsAudio() || EventRespawn.IsAudio() {
		t.Error("Expected audio classification to match")
	}
}
