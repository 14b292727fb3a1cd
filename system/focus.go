package system

import (
	"github.com/lixenwraith/marble-sandbox/input"
	"github.com/lixenwraith/marble-sandbox/parameter"
)

// updateFocus eases the time scale toward its target and returns the step length
func (s *Simulation) updateFocus(in input.Intent) float64 {
	c := &s.Controls
	target := 1.0
	if in.Focus && c.FocusEnergy > 0 {
		target = parameter.FocusSlowScale
		c.FocusEnergy = max(c.FocusEnergy-parameter.FocusDrain, 0)
	} else {
		c.FocusEnergy = min(c.FocusEnergy+parameter.FocusRegen, parameter.FocusEnergyMax)
	}
	c.TimeScale += (target - c.TimeScale) * parameter.FocusEase
	return parameter.BaseStep * c.TimeScale
}
