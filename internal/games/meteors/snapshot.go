package meteors

import "github.com/vovakirdan/tui-meteors/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Score   int
	Reason  string
	Cursor  core.Point
	Bounds  core.Bounds
	Meteors []Meteor
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Reason: core.ReasonNone.String()}
	}
	return Snapshot{
		Score:   g.session.Score(),
		Reason:  g.session.State().Reason.String(),
		Cursor:  g.board.Cursor(),
		Bounds:  g.board.Bounds(),
		Meteors: g.session.Field().Meteors(),
	}
}
