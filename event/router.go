package event

// Handler processes specific event types
type Handler interface {
	// HandleEvent processes a single event, called synchronously from the tick goroutine
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler for the listed types
type HandlerFunc struct {
	Types []EventType
	Fn    func(ev GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType  { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch after each tick
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// All handlers for an event are called before moving to the next event
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
