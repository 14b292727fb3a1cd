package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
	"github.com/lixenwraith/marble-sandbox/engine"
	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// present pushes transforms and material params of every moving entity
func (s *Simulation) present(now time.Time) {
	r := s.reg.Renderer()
	elapsed := s.session.Elapsed(now)
	ctrl, _, _ := s.reg.Controlled()

	s.reg.Marbles.Each(func(e core.Entity, m *component.MarbleComponent) {
		st, ok := s.phys.State(m.Body)
		if !ok {
			return
		}
		r.SetTransform(m.Render, vmath.Compose(st.Position, st.Rotation, m.Scale))
		if m.Light != 0 {
			r.SetTransform(m.Light, mgl64.Translate3D(st.Position.X(), st.Position.Y(), st.Position.Z()))
		}
		if m.Rainbow && !m.Tinted {
			r.SetColor(m.Render, RainbowColor(elapsed))
		}
		active := 0.0
		if e == ctrl {
			active = 1
		}
		r.SetParam(m.Render, parameter.ParamActive, active)
	})

	s.reg.Dynamics.Each(func(_ core.Entity, d *component.DynamicComponent) {
		s.pushBody(r, d.Body, d.Render, d.Scale)
	})
	s.reg.Platforms.Each(func(_ core.Entity, p *component.PlatformComponent) {
		s.pushBody(r, p.Body, p.Render, p.Scale)
	})

	// Pickups spin and bob in place
	spin := vmath.QuatYaw(elapsed * 2)
	bob := mgl64.Vec3{0, 0.2 * math.Sin(elapsed*3), 0}
	s.reg.PowerUps.Each(func(_ core.Entity, p *component.PowerUpComponent) {
		r.SetTransform(p.Render, vmath.Compose(p.Position.Add(bob), spin, p.Scale))
	})
	s.reg.Collectibles.Each(func(_ core.Entity, c *component.CollectibleComponent) {
		r.SetTransform(c.Render, vmath.Compose(c.Position.Add(bob), spin, c.Scale))
	})
}

func (s *Simulation) pushBody(r render.Renderer, body physics.Handle, h render.Handle, scale mgl64.Vec3) {
	if st, ok := s.phys.State(body); ok {
		r.SetTransform(h, vmath.Compose(st.Position, st.Rotation, scale))
	}
}

// RainbowColor cycles hue once per RainbowPeriod
func RainbowColor(elapsed float64) render.RGB {
	r, g, b := vmath.Hue(elapsed / parameter.RainbowPeriod.Seconds())
	return render.FromFloat(r, g, b)
}

// View snapshots HUD and camera state for presenters
func (s *Simulation) View() render.View {
	c := &s.Controls
	v := render.View{
		Level:       s.session.LevelName,
		Description: s.session.Description,
		Score:       s.session.Score,
		Complete:    s.session.Complete,
		Menu:        s.session.Menu,
		Yaw:         c.Yaw,
		Chase:       s.session.Camera == engine.CameraChase,
		Charge:      c.Charge,
		JumpCharge:  c.JumpCharge,
		MagnetPower: c.MagnetPower,
		FocusEnergy: c.FocusEnergy,
		TimeScale:   c.TimeScale,
		Rewinding:   c.Rewinding,
		Grappling:   c.Grapple.Active,
	}
	for _, k := range s.effects.Kinds() {
		v.Effects = append(v.Effects, k.String())
	}

	if _, m, st, ok := s.controlled(); ok {
		v.Controlled = m.Name
		v.Camera = st.Position
	}
	if s.session.Camera == engine.CameraOverview {
		v.Camera = s.overviewCenter()
	}
	return v
}

// overviewCenter frames the mean marble position
func (s *Simulation) overviewCenter() mgl64.Vec3 {
	var sum mgl64.Vec3
	n := 0
	s.reg.Marbles.Each(func(_ core.Entity, m *component.MarbleComponent) {
		if st, ok := s.phys.State(m.Body); ok {
			sum = sum.Add(st.Position)
			n++
		}
	})
	if n == 0 {
		return sum
	}
	return sum.Mul(1 / float64(n))
}
