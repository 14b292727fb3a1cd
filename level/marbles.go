package level

import (
	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/render"
)

// Marbles is the roster spawned into every level, first entry starts controlled
func Marbles() []component.MarbleSpec {
	return []component.MarbleSpec{
		{Name: "Azure", Radius: 0.5, Color: render.RGB{R: 60, G: 130, B: 255}},
		{Name: "Ember", Radius: 0.5, Color: render.RGB{R: 255, G: 90, B: 40}, Light: true},
		{Name: "Boulder", Radius: 0.75, Color: render.RGB{R: 150, G: 150, B: 150}, Density: 6},
		{Name: "Pip", Radius: 0.3, Color: render.RGB{R: 120, G: 255, B: 120}, Density: 1.5},
		{Name: "Prism", Radius: 0.5, Color: render.RGBWhite, Rainbow: true, Light: true},
	}
}
