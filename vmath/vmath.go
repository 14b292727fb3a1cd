package vmath

import "math"

// Epsilon is the tolerance for degenerate lengths and comparisons
const Epsilon = 1e-9

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Approach moves current toward target by a fraction of the remaining gap
// rate 0 holds, rate 1 snaps; the step never overshoots
func Approach(current, target, rate float64) float64 {
	rate = Clamp01(rate)
	next := current + (target-current)*rate
	if math.Abs(target-next) < Epsilon {
		return target
	}
	return next
}

// StepToward moves current toward target by at most step
func StepToward(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}

// Hue converts a hue in turns [0,1) to RGB channels in [0,1]
func Hue(h float64) (r, g, b float64) {
	h = h - math.Floor(h)
	i := int(h * 6)
	f := h*6 - float64(i)
	q := 1 - f
	switch i % 6 {
	case 0:
		return 1, f, 0
	case 1:
		return q, 1, 0
	case 2:
		return 0, 1, f
	case 3:
		return 0, q, 1
	case 4:
		return f, 0, 1
	default:
		return 1, 0, q
	}
}
