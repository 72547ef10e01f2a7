// Package curses runs the game directly on a tcell screen, the way a curses
// program would: meteors are drawn into terminal cells, the hardware cursor
// is the player, and the collision check reads back the cell under it.
package curses

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// styles maps core.Color to tcell styles.
var styles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorMeteor:  tcell.StyleDefault.Foreground(tcell.ColorOrange),
	core.ColorCursor:  tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	core.ColorBorder:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	core.ColorHUD:     tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
	core.ColorAlert:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

func styleOf(c core.Color) tcell.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return tcell.StyleDefault
}

// Surface is a core.Surface backed by the cells of a tcell screen.
// The board occupies the top-left bounds of the screen.
type Surface struct {
	screen tcell.Screen
	bounds core.Bounds
	cursor core.Point
}

var _ core.Surface = (*Surface)(nil)

// NewSurface creates a surface of the given bounds on screen.
func NewSurface(screen tcell.Screen, bounds core.Bounds) *Surface {
	return &Surface{screen: screen, bounds: bounds}
}

// Bounds returns the board size.
func (s *Surface) Bounds() core.Bounds {
	return s.bounds
}

// SetBounds changes the board size and clips the cursor into it.
func (s *Surface) SetBounds(b core.Bounds) {
	s.bounds = b
	if b.Validate() == nil {
		s.MoveCursor(b.Clip(s.cursor).Row, b.Clip(s.cursor).Col)
	}
}

// EraseAt blanks a board cell.
func (s *Surface) EraseAt(row, col int) {
	if s.bounds.Contains(core.Point{Row: row, Col: col}) {
		s.screen.SetContent(col, row, core.Blank, nil, tcell.StyleDefault)
	}
}

// DrawAt paints glyph into a board cell.
func (s *Surface) DrawAt(row, col int, glyph rune) {
	if s.bounds.Contains(core.Point{Row: row, Col: col}) {
		s.screen.SetContent(col, row, glyph, nil, styleOf(core.ColorMeteor))
	}
}

// GlyphAt reads the character currently in a terminal cell.
func (s *Surface) GlyphAt(row, col int) rune {
	if !s.bounds.Contains(core.Point{Row: row, Col: col}) {
		return core.Blank
	}
	r, _, _, _ := s.screen.GetContent(col, row)
	if r == 0 {
		return core.Blank
	}
	return r
}

// MoveCursor places the terminal cursor. Moves off the board are ignored.
func (s *Surface) MoveCursor(row, col int) {
	p := core.Point{Row: row, Col: col}
	if !s.bounds.Contains(p) {
		return
	}
	s.cursor = p
	s.screen.ShowCursor(col, row)
}

// Cursor returns the cursor position.
func (s *Surface) Cursor() core.Point {
	return s.cursor
}

// Paint copies a core.Screen onto the terminal at (x, y).
func Paint(screen tcell.Screen, src *core.Screen, x, y int) {
	for row := range src.Height() {
		for col := range src.Width() {
			cell := src.GetCell(col, row)
			screen.SetContent(x+col, y+row, cell.Rune, nil, styleOf(cell.Color))
		}
	}
}

// drawText writes a line of text starting at (x, y), clipped to the screen.
func drawText(screen tcell.Screen, x, y int, text string, c core.Color) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	st := styleOf(c)
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
}
