package input

// Control enumerates the debounced control surface
type Control uint8

const (
	ControlNone Control = iota

	// Held controls
	ControlFire
	ControlSecondary
	ControlJump
	ControlMagnetAttract
	ControlMagnetRepel
	ControlFocus
	ControlRewind
	ControlMoveForward
	ControlMoveBack
	ControlMoveLeft
	ControlMoveRight

	// One-shot commands
	ControlStomp
	ControlBoost
	ControlCycleMarble
	ControlToggleCamera
	ControlReset
	ControlMenu
	ControlQuit
	ControlToggleMute

	// Aim nudges, converted to pointer deltas
	ControlAimLeft
	ControlAimRight
	ControlAimUp
	ControlAimDown

	controlCount
)

// IsHeld reports whether the control has down/up semantics
func (c Control) IsHeld() bool {
	return c >= ControlFire && c <= ControlMoveRight
}

// Button is the per-tick view of a held control
type Button struct {
	Held     bool // Down at sample time
	Pressed  bool // Went down since the previous sample
	Released bool // Went up since the previous sample
}

// Intent is the latest control state, sampled exactly once at tick start
type Intent struct {
	Fire      Button
	Secondary Button
	Jump      Button

	MagnetAttract bool
	MagnetRepel   bool
	Focus         bool
	Rewind        bool

	Stomp        bool
	Boost        bool
	CycleMarble  bool
	ToggleCamera bool
	Reset        bool
	Menu         bool
	Quit         bool
	ToggleMute   bool

	// Pointer delta since the previous sample
	AimDX, AimDY float64

	// Move axis relative to aim yaw, each in [-1,1]
	MoveForward float64
	MoveRight   float64

	// Select is a 1-based level pick, zero when none
	Select int
}

// Idle reports whether the intent carries no input at all
func (in Intent) Idle() bool {
	return in == Intent{}
}
