package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marble-sandbox/parameter"
)

func TestSamplerEdgesResetPerSample(t *testing.T) {
	s := NewSampler()
	s.Press(ControlFire)

	in := s.Sample()
	if !in.Fire.Held || !in.Fire.Pressed || in.Fire.Released {
		t.Errorf("Expected held+pressed, got %+v", in.Fire)
	}

	in = s.Sample()
	if !in.Fire.Held || in.Fire.Pressed {
		t.Errorf("Expected held without a second press edge, got %+v", in.Fire)
	}

	s.Release(ControlFire)
	in = s.Sample()
	if in.Fire.Held || !in.Fire.Released {
		t.Errorf("Expected released, got %+v", in.Fire)
	}
}

func TestSamplerPressReleaseWithinOneTick(t *testing.T) {
	s := NewSampler()
	s.Press(ControlJump)
	s.Release(ControlJump)

	in := s.Sample()
	if !in.Jump.Pressed || !in.Jump.Released || in.Jump.Held {
		t.Errorf("Expected both edges without hold, got %+v", in.Jump)
	}
}

func TestSamplerTapsAndAim(t *testing.T) {
	s := NewSampler()
	s.Press(ControlStomp)
	s.Aim(3, -2)
	s.Aim(1, 0)
	s.Press(ControlMoveForward)
	s.Press(ControlMoveLeft)

	in := s.Sample()
	if !in.Stomp {
		t.Error("Expected stomp tap")
	}
	if in.AimDX != 4 || in.AimDY != -2 {
		t.Errorf("Expected aim (4,-2), got (%v,%v)", in.AimDX, in.AimDY)
	}
	if in.MoveForward != 1 || in.MoveRight != -1 {
		t.Errorf("Expected move (1,-1), got (%v,%v)", in.MoveForward, in.MoveRight)
	}

	in = s.Sample()
	if in.Stomp || in.AimDX != 0 {
		t.Error("Expected taps and deltas cleared")
	}
}

func TestIntentIdle(t *testing.T) {
	if !(Intent{}).Idle() {
		t.Error("Expected zero intent idle")
	}
	if (Intent{Reset: true}).Idle() {
		t.Error("Expected reset intent to be active")
	}
}

func TestMapperHoldTimeout(t *testing.T) {
	s := NewSampler()
	m := NewMapper(nil, s)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	m.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), start)
	if !s.Held(ControlJump) {
		t.Fatal("Expected jump held after key")
	}

	// Repeat keeps it alive
	m.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), start.Add(parameter.HoldRelease/2))
	m.Expire(start.Add(parameter.HoldRelease))
	if !s.Held(ControlJump) {
		t.Error("Expected repeat to extend hold")
	}

	m.Expire(start.Add(parameter.HoldRelease/2 + parameter.HoldRelease))
	if s.Held(ControlJump) {
		t.Error("Expected hold released after timeout")
	}
	in := s.Sample()
	if !in.Jump.Released {
		t.Error("Expected release edge after timeout")
	}
}

func TestMapperMouseButtons(t *testing.T) {
	s := NewSampler()
	m := NewMapper(nil, s)
	now := time.Now()

	m.Handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone), now)
	if !s.Held(ControlFire) {
		t.Fatal("Expected fire held on button down")
	}
	// Mouse holds are never timed out
	m.Expire(now.Add(10 * parameter.HoldRelease))
	if !s.Held(ControlFire) {
		t.Error("Expected mouse hold to survive expiry")
	}

	m.Handle(tcell.NewEventMouse(14, 5, tcell.ButtonNone, tcell.ModNone), now)
	if s.Held(ControlFire) {
		t.Error("Expected fire released on button up")
	}
	in := s.Sample()
	if in.AimDX <= 0 {
		t.Errorf("Expected positive aim from mouse motion, got %v", in.AimDX)
	}
}

func TestMapperDigitsSelect(t *testing.T) {
	s := NewSampler()
	m := NewMapper(nil, s)
	m.Handle(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), time.Now())
	if in := s.Sample(); in.Select != 3 {
		t.Errorf("Expected select 3, got %d", in.Select)
	}
}

func TestMapperArrowAims(t *testing.T) {
	s := NewSampler()
	m := NewMapper(nil, s)
	m.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), time.Now())
	if in := s.Sample(); in.AimDX != -parameter.AimKeyStep {
		t.Errorf("Expected aim %v, got %v", -parameter.AimKeyStep, in.AimDX)
	}
}
