package level

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

// Vec is a JSON point {x,y,z}
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec) V3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Span is an inclusive [min,max] pair
type Span [2]float64

// Range is a goal or checkpoint volume; a missing axis is unbounded
type Range struct {
	X *Span `json:"x,omitempty"`
	Y *Span `json:"y,omitempty"`
	Z *Span `json:"z,omitempty"`
}

// AABB converts the range, leaving missing axes infinite
func (r Range) AABB() vmath.AABB {
	axis := func(s *Span) [2]float64 {
		if s == nil {
			return vmath.Unbounded
		}
		return [2]float64(*s)
	}
	return vmath.AABBFromSpans(axis(r.X), axis(r.Y), axis(r.Z))
}

// Zone is one generator invocation; fields beyond type and pos are per-type options
type Zone struct {
	Type     string  `json:"type"`
	Pos      Vec     `json:"pos"`
	Size     *Vec    `json:"size,omitempty"`
	Material string  `json:"material,omitempty"`
	Angle    float64 `json:"angle,omitempty"` // Degrees
	Yaw      float64 `json:"yaw,omitempty"`   // Degrees
	Count    int     `json:"count,omitempty"`
	Axis     *Vec    `json:"axis,omitempty"`
	Distance float64 `json:"distance,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
	Phase    float64 `json:"phase,omitempty"`
	Effect   string  `json:"effect,omitempty"`
	Seed     int64   `json:"seed,omitempty"`
}

// size returns the authored half extents or def
func (z Zone) size(def mgl64.Vec3) mgl64.Vec3 {
	if z.Size == nil {
		return def
	}
	return z.Size.V3()
}

func (z Zone) count(def int) int {
	if z.Count <= 0 {
		return def
	}
	return z.Count
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

type Goal struct {
	ID    int   `json:"id"`
	Range Range `json:"range"`
}

type Checkpoint struct {
	ID      int   `json:"id"`
	Range   Range `json:"range"`
	Respawn *Vec  `json:"respawn,omitempty"`
}

type Camera struct {
	Distance float64 `json:"distance"`
	Height   float64 `json:"height"`
}

// Definition is one level record
type Definition struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Zones       []Zone       `json:"zones"`
	Spawn       Vec          `json:"spawn"`
	Goals       []Goal       `json:"goals"`
	Checkpoints []Checkpoint `json:"checkpoints,omitempty"`
	Camera      Camera       `json:"camera"`
	Floor       *float64     `json:"floor,omitempty"`
}

// FloorY is the out-of-bounds threshold
func (d *Definition) FloorY() float64 {
	if d.Floor == nil {
		return parameter.DefaultFloor
	}
	return *d.Floor
}

// LoadFile reads a JSON array of level definitions
// Contents are trusted; only syntax errors are reported
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing level file %s: %w", path, err)
	}
	return defs, nil
}
