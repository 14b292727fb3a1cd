package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trading latency for underruns
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMaxVoices caps concurrent one-shot sounds in the mixer
	AudioMaxVoices = 24
)

// Impact Sound
const (
	ImpactSoundDuration = 90 * time.Millisecond
	ImpactSoundAttack   = 2 * time.Millisecond
	ImpactSoundRelease  = 60 * time.Millisecond

	// ImpactVolumeSpeed is the impact speed producing full volume
	ImpactVolumeSpeed = 30.0

	// ImpactRefRadius is the marble radius that plays the material base pitch
	ImpactRefRadius = 0.5
)

// Roll Sound
const (
	RollBaseFrequency = 70.0
	RollSpeedPitch    = 4.0
	RollSpeedVolume   = 0.04
	RollMaxVolume     = 0.35
)

// Chime Sounds
const (
	GoalChimeDuration    = 700 * time.Millisecond
	CollectChimeDuration = 250 * time.Millisecond
	ChimeAttack          = 5 * time.Millisecond
	ChimeRelease         = 200 * time.Millisecond
)

// Whoosh Sound
const (
	WhooshDuration       = 300 * time.Millisecond
	WhooshStartFrequency = 900.0
	WhooshEndFrequency   = 200.0
)
