package level

func span(lo, hi float64) *Span {
	return &Span{lo, hi}
}

func size(x, y, z float64) *Vec {
	return &Vec{x, y, z}
}

// Catalog returns the built-in levels in play order
func Catalog() []Definition {
	return []Definition{
		{
			Name:        "Training Grounds",
			Description: "Roll, charge and jump onto the far pad",
			Spawn:       Vec{0, 1, 0},
			Zones: []Zone{
				{Type: "floor", Pos: Vec{0, 0, -10}, Size: size(12, 0.5, 16)},
				{Type: "wall", Pos: Vec{-12, 0, -10}, Size: size(0.5, 1.5, 16)},
				{Type: "wall", Pos: Vec{12, 0, -10}, Size: size(0.5, 1.5, 16)},
				{Type: "pickups", Pos: Vec{0, 0.6, -6}, Count: 4, Effect: "speed"},
				{Type: "ramp", Pos: Vec{0, 1, -20}, Size: size(3, 0.25, 4), Angle: -15},
			},
			Goals: []Goal{
				{ID: 1, Range: Range{X: span(-3, 3), Z: span(-25, -22)}},
			},
			Camera: Camera{Distance: 10, Height: 4},
		},
		{
			Name:        "Domino Alley",
			Description: "Knock the row down, then bank off the bumpers",
			Spawn:       Vec{0, 1, 4},
			Zones: []Zone{
				{Type: "floor", Pos: Vec{0, 0, -14}, Size: size(8, 0.5, 20), Material: "wood"},
				{Type: "dominoes", Pos: Vec{0, 0, -4}, Count: 14},
				{Type: "bumpers", Pos: Vec{0, 0, -22}, Count: 6, Distance: 3.5},
				{Type: "pickups", Pos: Vec{-5, 0.6, -2}, Count: 6, Effect: "jump"},
			},
			Checkpoints: []Checkpoint{
				{ID: 1, Range: Range{X: span(-8, 8), Y: span(0, 3), Z: span(-16, -14)}},
			},
			Goals: []Goal{
				{ID: 1, Range: Range{X: span(-2, 2), Z: span(-24, -20)}},
				{ID: 2, Range: Range{X: span(5, 8), Z: span(-33, -30)}},
			},
			Camera: Camera{Distance: 12, Height: 5},
		},
		{
			Name:        "Platform Hop",
			Description: "Time the moving pads across the gap",
			Spawn:       Vec{0, 1, 0},
			Zones: []Zone{
				{Type: "floor", Pos: Vec{0, 0, 0}, Size: size(4, 0.5, 4)},
				{Type: "moving-platform", Pos: Vec{0, 0, -10}, Distance: 3, Speed: 1.2},
				{Type: "rotating-platform", Pos: Vec{0, 0, -18}, Speed: 0.6},
				{Type: "moving-platform", Pos: Vec{0, 1, -26}, Axis: &Vec{0, 1, 0}, Distance: 1.5, Speed: 0.8},
				{Type: "floor", Pos: Vec{0, 2, -36}, Size: size(4, 0.5, 4), Material: "metal"},
			},
			Checkpoints: []Checkpoint{
				{ID: 1, Range: Range{X: span(-4, 4), Y: span(0, 3), Z: span(-4, 4)}, Respawn: &Vec{0, 1.5, 0}},
			},
			Goals: []Goal{
				{ID: 1, Range: Range{X: span(-4, 4), Y: span(2, 6), Z: span(-40, -32)}},
			},
			Camera: Camera{Distance: 14, Height: 6},
		},
		{
			Name:        "Spiral Tower",
			Description: "Grapple and climb the spiral to the summit",
			Spawn:       Vec{6, 1, 3},
			Zones: []Zone{
				{Type: "floor", Pos: Vec{0, 0, 0}, Size: size(14, 0.5, 14)},
				{Type: "spiral", Pos: Vec{0, 0.4, 0}, Count: 24, Distance: 6},
				{Type: "floor", Pos: Vec{0, 12.5, 0}, Size: size(3, 0.5, 3), Material: "glass"},
				{Type: "pickups", Pos: Vec{-6, 6, 0}, Count: 3},
			},
			Checkpoints: []Checkpoint{
				{ID: 1, Range: Range{X: span(-9, 9), Y: span(5, 8), Z: span(-9, 9)}},
			},
			Goals: []Goal{
				{ID: 1, Range: Range{X: span(-3, 3), Y: span(12, 16), Z: span(-3, 3)}},
			},
			Camera: Camera{Distance: 18, Height: 10},
		},
		{
			Name:        "Zero-G Debris",
			Description: "Magnet the floating debris clear of the goals",
			Spawn:       Vec{0, 1, 0},
			Zones: []Zone{
				{Type: "floor", Pos: Vec{0, 0, -10}, Size: size(14, 0.5, 14), Material: "ice"},
				{Type: "debris", Pos: Vec{0, 4, -10}, Count: 20, Seed: 7},
				{Type: "wall", Pos: Vec{0, 0, -24}, Size: size(14, 1, 0.5)},
			},
			Goals: []Goal{
				{ID: 1, Range: Range{X: span(-12, -8), Z: span(-22, -18)}},
				{ID: 2, Range: Range{X: span(8, 12), Z: span(-22, -18)}},
			},
			Camera: Camera{Distance: 16, Height: 8},
		},
	}
}
