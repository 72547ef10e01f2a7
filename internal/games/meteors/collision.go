package meteors

import "github.com/vovakirdan/tui-meteors/internal/core"

// IsHit reports whether the cell under the cursor shows the meteor glyph.
// It reads the rendered surface rather than the meteor list, so it only sees
// meteors that have been drawn: a replacement spawned by ReapAndRespawn cannot
// hit the player until the next Step draws it.
func IsHit(s core.Surface, glyph rune) bool {
	c := s.Cursor()
	return s.GlyphAt(c.Row, c.Col) == glyph
}
