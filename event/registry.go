package event

var typeNames = map[EventType]string{
	EventImpact:        "impact",
	EventRollStart:     "roll_start",
	EventRollUpdate:    "roll_update",
	EventRollStop:      "roll_stop",
	EventGoalChime:     "goal_chime",
	EventBoostWhoosh:   "boost_whoosh",
	EventCollectChime:  "collect_chime",
	EventCheckpoint:    "checkpoint",
	EventGoalScored:    "goal_scored",
	EventLevelComplete: "level_complete",
	EventRespawn:       "respawn",
	EventPickup:        "pickup",
	EventMarbleHit:     "marble_hit",
}

// String returns the wire name used in logs and spectator frames
func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// IsAudio reports whether the event only drives sound feedback
func (t EventType) IsAudio() bool {
	switch t {
	case EventImpact, EventRollStart, EventRollUpdate, EventRollStop,
		EventGoalChime, EventBoostWhoosh, EventCollectChime:
		return true
	}
	return false
}
