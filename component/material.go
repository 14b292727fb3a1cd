package component

import "github.com/lixenwraith/marble-sandbox/parameter"

// Material tags a surface for contact response and audio
type Material string

const (
	MaterialDefault Material = "default"
	MaterialStone   Material = "stone"
	MaterialWood    Material = "wood"
	MaterialMetal   Material = "metal"
	MaterialIce     Material = "ice"
	MaterialRubber  Material = "rubber"
	MaterialGlass   Material = "glass"

	// MaterialMarble tags marble-on-marble contacts; marbles are not level surfaces
	MaterialMarble Material = "marble"
)

// Surface holds the contact coefficients of a material
type Surface struct {
	Friction    float64
	Restitution float64
}

var surfaces = map[Material]Surface{
	MaterialDefault: {parameter.DefaultFriction, parameter.DefaultRestitution},
	MaterialStone:   {0.8, 0.2},
	MaterialWood:    {0.6, 0.35},
	MaterialMetal:   {0.4, 0.5},
	MaterialIce:     {0.05, 0.1},
	MaterialRubber:  {0.9, 0.85},
	MaterialGlass:   {0.3, 0.6},
}

// SurfaceOf falls back to the default coefficients for unknown tags
func SurfaceOf(m Material) Surface {
	if s, ok := surfaces[m]; ok {
		return s
	}
	return surfaces[MaterialDefault]
}
