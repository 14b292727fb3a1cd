package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marble-sandbox/parameter"
)

// Mapper turns terminal events into Sampler transitions
// Terminals report no key release, so a held key is released after HoldRelease without a repeat
// Mouse buttons report real up/down and are never timed out
type Mapper struct {
	table   *KeyTable
	sampler *Sampler

	keyHeld  [controlCount]bool
	lastSeen [controlCount]time.Time

	buttons      tcell.ButtonMask
	mouseX       int
	mouseY       int
	mouseTracked bool
}

func NewMapper(table *KeyTable, sampler *Sampler) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{table: table, sampler: sampler}
}

// Handle routes one terminal event; returns false for events it ignores
func (m *Mapper) Handle(ev tcell.Event, now time.Time) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return m.handleKey(e, now)
	case *tcell.EventMouse:
		m.handleMouse(e)
		return true
	}
	return false
}

func (m *Mapper) handleKey(ev *tcell.EventKey, now time.Time) bool {
	// Digits pick levels from the menu
	if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9' {
		m.sampler.Select(int(ev.Rune() - '0'))
		return true
	}

	c := m.table.Lookup(ev)
	switch c {
	case ControlNone:
		return false
	case ControlAimLeft:
		m.sampler.Aim(-parameter.AimKeyStep, 0)
	case ControlAimRight:
		m.sampler.Aim(parameter.AimKeyStep, 0)
	case ControlAimUp:
		m.sampler.Aim(0, -parameter.AimKeyStep)
	case ControlAimDown:
		m.sampler.Aim(0, parameter.AimKeyStep)
	default:
		m.sampler.Press(c)
		if c.IsHeld() {
			m.keyHeld[c] = true
			m.lastSeen[c] = now
		}
	}
	return true
}

func (m *Mapper) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if m.mouseTracked {
		m.sampler.Aim(float64(x-m.mouseX)*parameter.AimKeyStep/4, float64(y-m.mouseY)*parameter.AimKeyStep/2)
	}
	m.mouseX, m.mouseY, m.mouseTracked = x, y, true

	buttons := ev.Buttons()
	m.mouseButton(buttons, tcell.Button1, ControlFire)
	m.mouseButton(buttons, tcell.Button2, ControlSecondary)
	m.buttons = buttons
}

func (m *Mapper) mouseButton(buttons, mask tcell.ButtonMask, c Control) {
	was := m.buttons&mask != 0
	is := buttons&mask != 0
	switch {
	case is && !was:
		m.sampler.Press(c)
	case was && !is && !m.keyHeld[c]:
		m.sampler.Release(c)
	}
}

// Expire releases key-held controls with no repeat within HoldRelease
// Call once per tick before sampling
func (m *Mapper) Expire(now time.Time) {
	for c := Control(0); c < controlCount; c++ {
		if !m.keyHeld[c] || now.Sub(m.lastSeen[c]) < parameter.HoldRelease {
			continue
		}
		m.keyHeld[c] = false
		if m.buttons&buttonFor(c) == 0 {
			m.sampler.Release(c)
		}
	}
}

func buttonFor(c Control) tcell.ButtonMask {
	switch c {
	case ControlFire:
		return tcell.Button1
	case ControlSecondary:
		return tcell.Button2
	}
	return 0
}
