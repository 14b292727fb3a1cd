package render

// RGB is an 8-bit per channel color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}

	// RGBRewind tints the controlled marble while history plays back
	RGBRewind = RGB{120, 160, 255}

	// RGBActivated marks a reached checkpoint
	RGBActivated = RGB{60, 220, 90}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// FromFloat builds a color from 0..1 channels
func FromFloat(r, g, b float64) RGB {
	return RGB{R: clamp(r * 255), G: clamp(g * 255), B: clamp(b * 255)}
}

// FromHex converts 0xRRGGBB
func FromHex(hex uint32) RGB {
	return RGB{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex)}
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	// Clamp to not wrap on factor > 1.0
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}
