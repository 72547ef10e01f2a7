package core

import (
	"strings"
)

// Blank is the glyph of an empty cell.
const Blank = ' '

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors used by the game and its HUD. The platform maps them to styles.
const (
	ColorDefault Color = iota
	ColorMeteor
	ColorCursor
	ColorBorder
	ColorHUD
	ColorAlert
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Surface is the render target shared by the simulation and the collision check.
// Coordinates are (row, col). Writes outside Bounds() are ignored and reads
// outside Bounds() return Blank.
type Surface interface {
	Bounds() Bounds
	EraseAt(row, col int)
	DrawAt(row, col int, glyph rune)
	GlyphAt(row, col int) rune
	MoveCursor(row, col int)
	Cursor() Point
}

// Screen is a 2D character buffer with a cursor.
// It decouples game rendering from the terminal: the game draws into it using
// simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	cursor Point
}

// Screen is the in-memory render surface.
var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen size as playfield bounds.
func (s *Screen) Bounds() Bounds {
	return Bounds{Height: s.height, Width: s.width}
}

// Resize changes the screen dimensions, preserving content where possible.
// The cursor is pulled back inside the new area.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}

	if width > 0 && height > 0 {
		s.cursor = s.Bounds().Clip(s.cursor)
	}
}

// Clear fills the entire screen with blanks.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: Blank}
		}
	}
}

// Set places a rune at (x, y) with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColor(x, y, r, ColorDefault)
}

// SetColor places a colored rune at (x, y).
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at (x, y), or Blank when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: Blank}
	}
	return s.cells[y][x]
}

// EraseAt clears the cell at (row, col).
func (s *Screen) EraseAt(row, col int) {
	s.Set(col, row, Blank)
}

// DrawAt paints glyph at (row, col).
func (s *Screen) DrawAt(row, col int, glyph rune) {
	s.SetColor(col, row, glyph, ColorMeteor)
}

// GlyphAt returns the glyph at (row, col).
func (s *Screen) GlyphAt(row, col int) rune {
	return s.Get(col, row)
}

// MoveCursor places the cursor at (row, col).
// Like curses, a move outside the screen leaves the cursor where it was.
func (s *Screen) MoveCursor(row, col int) {
	p := Point{Row: row, Col: col}
	if !s.Bounds().Contains(p) {
		return
	}
	s.cursor = p
}

// Cursor returns the cursor position.
func (s *Screen) Cursor() Point {
	return s.cursor
}

// Blit copies src into s with its top-left corner at (x, y).
func (s *Screen) Blit(src *Screen, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			c := src.cells[sy][sx]
			s.SetColor(x+sx, y+sy, c.Rune, c.Color)
		}
	}
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColor(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	// Corners
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// DrawFrame draws the curses-style border of the classic board:
// pipes on the sides, dashes on top and bottom, commas in the upper corners
// and apostrophes in the lower corners.
func (s *Screen) DrawFrame() {
	w, h := s.width, s.height
	for x := 1; x < w-1; x++ {
		s.SetColor(x, 0, '-', ColorBorder)
		s.SetColor(x, h-1, '-', ColorBorder)
	}
	for y := 1; y < h-1; y++ {
		s.SetColor(0, y, '|', ColorBorder)
		s.SetColor(w-1, y, '|', ColorBorder)
	}
	s.SetColor(0, 0, ',', ColorBorder)
	s.SetColor(w-1, 0, ',', ColorBorder)
	s.SetColor(0, h-1, '\'', ColorBorder)
	s.SetColor(w-1, h-1, '\'', ColorBorder)
}

// String converts the screen buffer to a plain string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
