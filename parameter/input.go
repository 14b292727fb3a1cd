package parameter

import "time"

const (
	// HoldRelease is how long a held control lasts without key repeat, terminals report no key release
	HoldRelease = 500 * time.Millisecond

	// InputChannelSize buffers device events between ticks
	InputChannelSize = 256
)
