package event

import "github.com/lixenwraith/marble-sandbox/parameter"

// EventQueue is a fixed ring of pending events owned by the tick goroutine
// Overflow: oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest unread one at capacity
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Reset drops every pending event
func (eq *EventQueue) Reset() {
	eq.events = [parameter.EventQueueSize]GameEvent{}
	eq.head, eq.tail = 0, 0
}
