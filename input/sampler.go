package input

// Sampler accumulates device transitions between ticks
// Edges survive until the next Sample so a press and release inside one frame are both seen
type Sampler struct {
	held     [controlCount]bool
	pressed  [controlCount]bool
	released [controlCount]bool
	taps     [controlCount]bool

	aimDX, aimDY float64
	selectLevel  int
}

func NewSampler() *Sampler {
	return &Sampler{}
}

// Press marks a held control down; repeats while down add no edge
func (s *Sampler) Press(c Control) {
	if c >= controlCount {
		return
	}
	if !c.IsHeld() {
		s.taps[c] = true
		return
	}
	if !s.held[c] {
		s.held[c] = true
		s.pressed[c] = true
	}
}

// Release marks a held control up
func (s *Sampler) Release(c Control) {
	if c >= controlCount || !c.IsHeld() {
		return
	}
	if s.held[c] {
		s.held[c] = false
		s.released[c] = true
	}
}

// Held reports the current device state of a control
func (s *Sampler) Held(c Control) bool {
	return c < controlCount && s.held[c]
}

// Aim adds a pointer delta
func (s *Sampler) Aim(dx, dy float64) {
	s.aimDX += dx
	s.aimDY += dy
}

// Select records a menu level pick
func (s *Sampler) Select(n int) {
	s.selectLevel = n
}

// ReleaseAll drops every held control, used on focus loss and level change
func (s *Sampler) ReleaseAll() {
	for c := Control(0); c < controlCount; c++ {
		s.Release(c)
	}
}

func (s *Sampler) button(c Control) Button {
	return Button{Held: s.held[c], Pressed: s.pressed[c], Released: s.released[c]}
}

func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// Sample returns the intent for this tick and resets edges, taps and deltas
func (s *Sampler) Sample() Intent {
	in := Intent{
		Fire:      s.button(ControlFire),
		Secondary: s.button(ControlSecondary),
		Jump:      s.button(ControlJump),

		MagnetAttract: s.held[ControlMagnetAttract],
		MagnetRepel:   s.held[ControlMagnetRepel],
		Focus:         s.held[ControlFocus],
		Rewind:        s.held[ControlRewind],

		Stomp:        s.taps[ControlStomp],
		Boost:        s.taps[ControlBoost],
		CycleMarble:  s.taps[ControlCycleMarble],
		ToggleCamera: s.taps[ControlToggleCamera],
		Reset:        s.taps[ControlReset],
		Menu:         s.taps[ControlMenu],
		Quit:         s.taps[ControlQuit],
		ToggleMute:   s.taps[ControlToggleMute],

		AimDX: s.aimDX,
		AimDY: s.aimDY,

		MoveForward: axis(s.held[ControlMoveForward], s.held[ControlMoveBack]),
		MoveRight:   axis(s.held[ControlMoveRight], s.held[ControlMoveLeft]),

		Select: s.selectLevel,
	}

	s.pressed = [controlCount]bool{}
	s.released = [controlCount]bool{}
	s.taps = [controlCount]bool{}
	s.aimDX, s.aimDY = 0, 0
	s.selectLevel = 0
	return in
}
