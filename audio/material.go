package audio

import (
	"math"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/parameter"
)

// tone is the impact and roll voicing of a surface material
type tone struct {
	freq  float64 // Impact pitch at the reference radius
	wave  WaveType
	noise float64 // Click share mixed over the tone, 0..1
	roll  float64 // Roll pitch multiplier
}

var tones = map[component.Material]tone{
	component.MaterialDefault: {freq: 440, wave: WaveTriangle, noise: 0.3, roll: 1},
	component.MaterialStone:   {freq: 220, wave: WaveTriangle, noise: 0.5, roll: 0.8},
	component.MaterialWood:    {freq: 330, wave: WaveSine, noise: 0.35, roll: 1.1},
	component.MaterialMetal:   {freq: 880, wave: WaveSquare, noise: 0.15, roll: 1.6},
	component.MaterialIce:     {freq: 1320, wave: WaveSine, noise: 0.1, roll: 1.3},
	component.MaterialRubber:  {freq: 160, wave: WaveSine, noise: 0.05, roll: 0.6},
	component.MaterialGlass:   {freq: 1760, wave: WaveSine, noise: 0.2, roll: 1.8},
	component.MaterialMarble:  {freq: 1100, wave: WaveTriangle, noise: 0.4, roll: 1},
}

func toneOf(m component.Material) tone {
	if t, ok := tones[m]; ok {
		return t
	}
	return tones[component.MaterialDefault]
}

// impactFrequency lowers pitch for larger marbles
func impactFrequency(m component.Material, radius float64) float64 {
	return toneOf(m).freq * parameter.ImpactRefRadius / math.Max(radius, 0.05)
}

// impactVolume maps impact speed to [0,1]
func impactVolume(speed float64) float64 {
	return math.Min(math.Max(speed/parameter.ImpactVolumeSpeed, 0), 1)
}

// rollFrequency rises with speed and material brightness
func rollFrequency(m component.Material, speed float64) float64 {
	return (parameter.RollBaseFrequency + speed*parameter.RollSpeedPitch) * toneOf(m).roll
}

func rollVolume(speed float64) float64 {
	return math.Min(speed*parameter.RollSpeedVolume, parameter.RollMaxVolume)
}
