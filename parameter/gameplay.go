package parameter

import "time"

// Aim
const (
	// AimSensitivity converts one unit of pointer delta to radians
	AimSensitivity = 0.005

	// AimKeyStep is the pointer delta emitted per aim key press
	AimKeyStep = 20.0

	// AimPitchLimit clamps pitch to ±80°
	AimPitchLimit = 80 * 3.141592653589793 / 180
)

// Charge and launch
const (
	ChargeRate       = 0.015
	ChargeMax        = 1.0
	LaunchBase       = 50.0
	LaunchScale      = 150.0
	SpeedEffectBoost = 2.0
)

// Jump
const (
	// JumpChargeRate builds full jump charge in 0.3s at 60 Hz
	JumpChargeRate = 1.0 / 18.0
	JumpBase       = 5.0
	JumpScale      = 10.0
	JumpEffectMul  = 2.0
	MaxJumps       = 2

	AirJumpImpulse = 8.0

	WallJumpRays     = 8
	WallJumpReach    = 0.3
	WallJumpPush     = 6.0
	WallJumpLift     = 8.0
	WallJumpUsedJump = 1
)

// Grapple
const (
	GrappleRange       = 40.0
	GrapplePull        = 0.8
	GrappleLift        = 0.3
	GrappleReleaseDist = 1.0
)

// Magnet
const (
	MagnetRadius   = 15.0
	MagnetStrength = 30.0
	MagnetMinDist  = 1.0
	MagnetDrain    = 0.005
	MagnetRegen    = 0.002
	MagnetPowerMax = 1.0
)

// Stomp
const (
	StompVelocity = -30.0
	StompRadius   = 10.0
	StompOutward  = 40.0
	StompLift     = 20.0
)

// Focus
const (
	FocusSlowScale = 0.2
	FocusEase      = 0.1
	FocusDrain     = 0.005
	FocusRegen     = 0.002
	FocusEnergyMax = 1.0
)

// Boost dash
const (
	BoostImpulse  = 25.0
	BoostCooldown = time.Second
)

// Move
const (
	// MoveImpulse is applied every tick a move axis is held
	MoveImpulse = 0.35
)

// Resolution
const (
	// GroundReach is added to the marble radius for the grounded ray
	GroundReach = 0.1

	ImpactMinSpeed = 2.0
	ImpactCooldown = 100 * time.Millisecond

	// RollMinSpeed starts ambient roll audio for grounded marbles
	RollMinSpeed = 0.5

	DefaultFloor = -20.0

	CheckpointLift = 1.5

	PowerUpPickupDist = 1.5
	PowerUpDuration   = 10 * time.Second

	CollectiblePickupDist = 1.2
	CollectibleScore      = 5

	MarbleContactSlack = 0.1
	MarbleHitMinSpeed  = 5.0
	MarbleHitPush      = 0.5
	MarbleHitLift      = 2.0
	MarbleHitCooldown  = 500 * time.Millisecond
)

// Session
const (
	// RewindCapacity is five seconds at 60 Hz
	RewindCapacity = 300

	// AdvanceDelay is the pause between level completion and the next level
	AdvanceDelay = 3 * time.Second
)
