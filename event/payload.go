package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/core"
)

// ImpactPayload carries parameters for an impact sound
type ImpactPayload struct {
	Velocity float64            `json:"velocity"`
	Radius   float64            `json:"radius"`
	Material component.Material `json:"material"`
	Key      string             `json:"key"` // Cooldown key, one per marble or pair side
}

// RollPayload carries ambient roll state
type RollPayload struct {
	Marble   core.Entity        `json:"marble"`
	Radius   float64            `json:"radius"`
	Material component.Material `json:"material"`
	Speed    float64            `json:"speed"`
}

type CheckpointPayload struct {
	Checkpoint int         `json:"checkpoint"`
	Marble     string      `json:"marble"`
	Respawn    mgl64.Vec3  `json:"respawn"`
	Entity     core.Entity `json:"-"`
}

type GoalPayload struct {
	Goal   int    `json:"goal"`
	Marble string `json:"marble"`
	Score  int    `json:"score"`
}

// LevelCompletePayload summarizes the attempt; Goals maps goal id to the first marble name that scored it
type LevelCompletePayload struct {
	Level   string         `json:"level"`
	Score   int            `json:"score"`
	Seconds float64        `json:"seconds"`
	Goals   map[int]string `json:"goals"`
	Marble  string         `json:"marble"`
}

type RespawnPayload struct {
	Marble   string     `json:"marble"`
	Position mgl64.Vec3 `json:"position"`
}

// PickupKind discriminates PickupPayload
type PickupKind uint8

const (
	PickupPowerUp PickupKind = iota
	PickupCollectible
)

type PickupPayload struct {
	Kind   PickupKind           `json:"kind"`
	Effect component.EffectKind `json:"effect"`
	Marble string               `json:"marble"`
	Score  int                  `json:"score"`
}

type MarbleHitPayload struct {
	Attacker string  `json:"attacker"`
	Defender string  `json:"defender"`
	Speed    float64 `json:"speed"`
	Score    int     `json:"score"`
}
