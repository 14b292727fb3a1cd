package parameter

import "time"

// World
const (
	// Gravity is the vertical acceleration in m/s²
	Gravity = -9.81

	// SolverIterations is the number of contact passes per step
	SolverIterations = 4

	// BaseStep is the nominal physics step at 60 Hz before time dilation
	BaseStep = 1.0 / 60.0

	// TickInterval is the frame scheduler period matching BaseStep
	TickInterval = time.Second / 60
)

// Contact solver
const (
	// PenetrationSlop is the overlap tolerated before positional correction
	PenetrationSlop = 0.005

	// PositionCorrection is the fraction of penetration removed per pass
	PositionCorrection = 0.8

	// RestingSpeed is the approach speed below which contacts do not bounce
	RestingSpeed = 1.0

	LinearDamping  = 0.05
	AngularDamping = 0.1

	// MaxBodySpeed caps linear speed to keep thin geometry from tunneling completely
	MaxBodySpeed = 120.0
)

// Default materials
const (
	DefaultDensity     = 1.0
	DefaultFriction    = 0.5
	DefaultRestitution = 0.3

	MarbleDensity     = 2.5
	MarbleFriction    = 0.7
	MarbleRestitution = 0.4
)
