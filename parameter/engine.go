package parameter

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
