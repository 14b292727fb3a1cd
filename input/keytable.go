package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to controls
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]Control

	// Rune bindings, matched case-sensitively
	Runes map[rune]Control
}

// DefaultKeyTable returns the default bindings
// Mouse: left button fires, right button grapples, motion aims
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Control{
			tcell.KeyCtrlC:  ControlQuit,
			tcell.KeyCtrlQ:  ControlQuit,
			tcell.KeyCtrlS:  ControlToggleMute,
			tcell.KeyEscape: ControlMenu,
			tcell.KeyEnter:  ControlFire,
			tcell.KeyTab:    ControlCycleMarble,
			tcell.KeyLeft:   ControlAimLeft,
			tcell.KeyRight:  ControlAimRight,
			tcell.KeyUp:     ControlAimUp,
			tcell.KeyDown:   ControlAimDown,
		},
		Runes: map[rune]Control{
			' ': ControlJump,
			'w': ControlMoveForward,
			's': ControlMoveBack,
			'a': ControlMoveLeft,
			'd': ControlMoveRight,
			'e': ControlSecondary,
			'f': ControlFire,
			'q': ControlMagnetAttract,
			'z': ControlMagnetRepel,
			'x': ControlStomp,
			'b': ControlBoost,
			'r': ControlRewind,
			't': ControlFocus,
			'c': ControlToggleCamera,
			'R': ControlReset,
			'm': ControlToggleMute,
		},
	}
}

// Lookup resolves a key event to a control
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Control {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
