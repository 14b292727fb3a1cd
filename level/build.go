package level

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/component"
)

// MarbleSpacing is the lateral gap between marbles at the spawn point
const MarbleSpacing = 1.5

// Build spawns zones, checkpoints, goals, then marbles centered on the spawn point
// Unknown zone types are skipped and reported together; everything else is still built
func Build(b WorldBuilder, def Definition, marbles []component.MarbleSpec) error {
	var errs []error
	for i, z := range def.Zones {
		gen, ok := Lookup(z.Type)
		if !ok {
			errs = append(errs, fmt.Errorf("zone %d: unknown type %q", i, z.Type))
			continue
		}
		gen(b, z)
	}

	for _, cp := range def.Checkpoints {
		var respawn *mgl64.Vec3
		if cp.Respawn != nil {
			p := cp.Respawn.V3()
			respawn = &p
		}
		b.AddCheckpoint(cp.ID, cp.Range.AABB(), respawn)
	}
	for _, g := range def.Goals {
		b.AddGoal(g.ID, g.Range.AABB())
	}

	spawn := def.Spawn.V3()
	offset := -MarbleSpacing * float64(len(marbles)-1) / 2
	for i, spec := range marbles {
		spec.Position = spawn.Add(mgl64.Vec3{offset + MarbleSpacing*float64(i), 0, 0})
		b.AddMarble(spec)
	}
	return errors.Join(errs...)
}
