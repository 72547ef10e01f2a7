package meteors

import (
	"math/rand"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Field owns the live meteors and advances them.
// Meteors are kept in insertion order so erase/draw pairing is stable.
type Field struct {
	meteors []Meteor
	factory *Factory
}

// NewField creates a field with count random meteors inside b.
// The meteors are not drawn until the first Step.
func NewField(b core.Bounds, count int, rng *rand.Rand) (*Field, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	f := &Field{
		meteors: make([]Meteor, 0, count+16),
		factory: NewFactory(rng),
	}
	for range count {
		f.SpawnOne(b)
	}
	return f, nil
}

// SpawnOne appends one new meteor.
func (f *Field) SpawnOne(b core.Bounds) {
	f.meteors = append(f.meteors, f.factory.Create(b))
}

// Add appends a specific meteor.
func (f *Field) Add(m Meteor) {
	f.meteors = append(f.meteors, m)
}

// Step erases every meteor, moves every meteor, then draws every meteor.
// The three passes must not be interleaved: erasing after another meteor has
// been drawn would punch holes in it. Meteors leaving the grid stay in the
// field until ReapAndRespawn.
func (f *Field) Step(erase, draw func(Meteor)) {
	for _, m := range f.meteors {
		erase(m)
	}
	for i := range f.meteors {
		f.meteors[i].Advance()
	}
	for _, m := range f.meteors {
		draw(m)
	}
}

// ReapAndRespawn removes meteors that left b and appends one fresh meteor for
// each one removed. Survivors keep their order; replacements go to the end and
// stay invisible until the next Step. Returns the number of meteors replaced.
func (f *Field) ReapAndRespawn(b core.Bounds) int {
	live := f.meteors[:0]
	for _, m := range f.meteors {
		if b.Contains(m.Pos) {
			live = append(live, m)
		}
	}
	removed := len(f.meteors) - len(live)
	f.meteors = live

	for range removed {
		f.SpawnOne(b)
	}
	return removed
}

// Len returns the number of live meteors.
func (f *Field) Len() int {
	return len(f.meteors)
}

// Meteors returns a copy of the live meteors.
func (f *Field) Meteors() []Meteor {
	out := make([]Meteor, len(f.meteors))
	copy(out, f.meteors)
	return out
}
