package system

import (
	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/event"
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// updateLaunch starts charging on press and fires along aim on release
func (s *Simulation) updateLaunch(in input.Intent) {
	c := &s.Controls
	_, m, _, ok := s.controlled()
	if !ok {
		c.Charging, c.Charge = false, 0
		return
	}

	if in.Fire.Pressed {
		c.Charging, c.Charge = true, 0
	}
	if !in.Fire.Released || !c.Charging {
		return
	}

	magnitude := parameter.LaunchBase + c.Charge*parameter.LaunchScale
	if s.effects.Active(component.EffectSpeed, s.now) {
		magnitude *= parameter.SpeedEffectBoost
	}
	s.phys.ApplyImpulse(m.Body, s.AimDirection().Mul(magnitude))
	c.Charging, c.Charge = false, 0
	s.emit(event.EventBoostWhoosh, nil)
}

// accumulateCharge grows launch and jump charge while their controls are held
// Charge counts ticks, not simulated time, so the gauge fills at the same pace under focus
func (s *Simulation) accumulateCharge(in input.Intent) {
	c := &s.Controls
	if c.Charging && in.Fire.Held {
		c.Charge = min(c.Charge+parameter.ChargeRate, parameter.ChargeMax)
	}
	if c.JumpCharging && in.Jump.Held {
		c.JumpCharge = min(c.JumpCharge+parameter.JumpChargeRate, 1)
	}
}

// boost dashes along horizontal aim, once per cooldown
func (s *Simulation) boost() {
	c := &s.Controls
	_, m, _, ok := s.controlled()
	if !ok || s.now.Before(c.BoostReady) {
		return
	}
	forward, _ := vmath.AimBasis(c.Yaw)
	s.phys.ApplyImpulse(m.Body, forward.Mul(parameter.BoostImpulse))
	c.BoostReady = s.now.Add(parameter.BoostCooldown)
	s.emit(event.EventBoostWhoosh, nil)
}

// move pushes the marble along the yaw-relative move axis
func (s *Simulation) move(in input.Intent) {
	if in.MoveForward == 0 && in.MoveRight == 0 {
		return
	}
	_, m, _, ok := s.controlled()
	if !ok {
		return
	}
	forward, right := vmath.AimBasis(s.Controls.Yaw)
	axis := vmath.V3Clamp(forward.Mul(in.MoveForward).Add(right.Mul(in.MoveRight)), 1)
	s.phys.ApplyImpulse(m.Body, axis.Mul(parameter.MoveImpulse*s.forceScale()))
}
