package parameter

import "time"

// Terminal view
const (
	// ViewCellsPerUnit is the horizontal zoom of the top-down projection
	ViewCellsPerUnit = 2.0

	// ViewAspect compensates tall terminal cells
	ViewAspect = 0.5

	HUDRows = 2
)

// Rainbow marbles
const (
	RainbowPeriod = 4 * time.Second
)

// ParamActive marks the controlled marble in renderer params
const ParamActive = "active"
