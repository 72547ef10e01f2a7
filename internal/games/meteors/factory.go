package meteors

import (
	"math/rand"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Factory creates meteors with random shape, path and position.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory drawing from rng.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// Create returns a new meteor strictly inside b. b must be valid.
// Positions come from signed 32-bit draws reduced with a floor modulo, so
// negative draws land inside the grid too.
func (f *Factory) Create(b core.Bounds) Meteor {
	row := core.FloorMod(f.signed(), b.Height)
	col := core.FloorMod(f.signed(), b.Width)

	return Meteor{
		Pos:   core.Point{Row: row, Col: col},
		Shape: Shape(f.rng.Intn(shapeCount)),
		Path:  Path(f.rng.Intn(pathCount)),
	}
}

// signed draws a uniformly distributed int32 value.
func (f *Factory) signed() int {
	return int(int32(f.rng.Uint32()))
}
