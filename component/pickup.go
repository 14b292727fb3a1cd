package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/physics"
	"github.com/lixenwraith/marble-sandbox/render"
)

// PowerUpComponent grants a timed effect to the controlled marble
type PowerUpComponent struct {
	Kind     EffectKind
	Position mgl64.Vec3
	Body     physics.Handle // Sensor
	Render   render.Handle
	Scale    mgl64.Vec3
}

// CollectibleComponent adds score to the controlled marble
type CollectibleComponent struct {
	Position mgl64.Vec3
	Body     physics.Handle // Sensor
	Render   render.Handle
	Scale    mgl64.Vec3
}
