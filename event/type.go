package event

import "time"

// EventType represents the type of simulation feedback event
type EventType int

const (
	// EventImpact reports a marble striking a surface or another marble
	// Trigger: surface resolution, marble hits | Consumer: audio | Payload: *ImpactPayload
	EventImpact EventType = iota

	// EventRollStart begins ambient roll for a grounded, moving marble
	// Trigger: roll tracking | Consumer: audio | Payload: *RollPayload
	EventRollStart

	// EventRollUpdate refreshes speed and surface of a rolling marble
	// Trigger: roll tracking | Consumer: audio | Payload: *RollPayload
	EventRollUpdate

	// EventRollStop ends ambient roll
	// Trigger: roll tracking, respawn | Consumer: audio | Payload: *RollPayload
	EventRollStop

	// EventGoalChime is the reach sound for checkpoints and goals
	// Trigger: checkpoint activation, goal score | Consumer: audio | Payload: nil
	EventGoalChime

	// EventBoostWhoosh follows launches and dashes
	// Trigger: launch release, boost | Consumer: audio | Payload: nil
	EventBoostWhoosh

	// EventCollectChime follows pickups
	// Trigger: collectible, power-up | Consumer: audio | Payload: nil
	EventCollectChime

	// EventCheckpoint records a one-shot checkpoint activation
	// Trigger: checkpoint resolution | Consumer: game log, spectator | Payload: *CheckpointPayload
	EventCheckpoint

	// EventGoalScored records a goal id entering a marble's scored set
	// Trigger: goal resolution | Consumer: game, spectator | Payload: *GoalPayload
	EventGoalScored

	// EventLevelComplete fires once per attempt when every goal is covered
	// Trigger: completion check | Consumer: game | Payload: *LevelCompletePayload
	EventLevelComplete

	// EventRespawn reports an out-of-bounds teleport
	// Trigger: floor check | Consumer: game log, metrics | Payload: *RespawnPayload
	EventRespawn

	// EventPickup reports a collected power-up or collectible
	// Trigger: pickup resolution | Consumer: metrics, spectator | Payload: *PickupPayload
	EventPickup

	// EventMarbleHit reports scoring contact between the controlled marble and another
	// Trigger: collision scoring | Consumer: spectator | Payload: *MarbleHitPayload
	EventMarbleHit
)

// GameEvent is one queued event stamped with its tick
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
	Time    time.Time
}
