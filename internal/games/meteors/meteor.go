// Package meteors implements the meteor dodging game.
// The player moves a cursor around the grid while meteors fly across it in
// straight lines; touching a meteor ends the game. The game advances exactly
// one tick per input event.
package meteors

import (
	"fmt"

	"github.com/vovakirdan/tui-meteors/internal/core"
)

// Shape determines which cells around a meteor's position are painted.
type Shape int

const (
	ShapeDot Shape = iota
	ShapeCross
	ShapeX

	shapeCount = 3
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeDot:
		return "Dot"
	case ShapeCross:
		return "Cross"
	case ShapeX:
		return "X"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// shapeOffsets lists the painted (dRow, dCol) offsets of each shape.
var shapeOffsets = [shapeCount][]core.Point{
	ShapeDot:   {{Row: 0, Col: 0}},
	ShapeCross: {{Row: 0, Col: 0}, {Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}},
	ShapeX:     {{Row: 0, Col: 0}, {Row: -1, Col: -1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: 1}},
}

// Path is the fixed direction a meteor travels in.
type Path int

const (
	PathUp Path = iota
	PathDown
	PathLeft
	PathRight
	PathUpLeft
	PathUpRight
	PathDownLeft
	PathDownRight

	pathCount = 8
)

// pathVectors holds the unit (dRow, dCol) step of each path.
var pathVectors = [pathCount]core.Point{
	PathUp:        {Row: -1, Col: 0},
	PathDown:      {Row: 1, Col: 0},
	PathLeft:      {Row: 0, Col: -1},
	PathRight:     {Row: 0, Col: 1},
	PathUpLeft:    {Row: -1, Col: -1},
	PathUpRight:   {Row: -1, Col: 1},
	PathDownLeft:  {Row: 1, Col: -1},
	PathDownRight: {Row: 1, Col: 1},
}

// Vector returns the per-step displacement of the path.
func (p Path) Vector() core.Point {
	return pathVectors[p]
}

// String returns the path name.
func (p Path) String() string {
	switch p {
	case PathUp:
		return "Up"
	case PathDown:
		return "Down"
	case PathLeft:
		return "Left"
	case PathRight:
		return "Right"
	case PathUpLeft:
		return "UpLeft"
	case PathUpRight:
		return "UpRight"
	case PathDownLeft:
		return "DownLeft"
	case PathDownRight:
		return "DownRight"
	default:
		return fmt.Sprintf("Path(%d)", int(p))
	}
}

// Meteor is a moving obstacle. Shape and Path never change after creation.
type Meteor struct {
	Pos   core.Point
	Shape Shape
	Path  Path
}

// Advance moves the meteor one cell along its path.
func (m *Meteor) Advance() {
	v := m.Path.Vector()
	m.Pos = m.Pos.Add(v.Row, v.Col)
}

// Cells returns every grid cell the meteor paints, including clipped ones.
func (m Meteor) Cells() []core.Point {
	offsets := shapeOffsets[m.Shape]
	cells := make([]core.Point, len(offsets))
	for i, o := range offsets {
		cells[i] = m.Pos.Add(o.Row, o.Col)
	}
	return cells
}

// Draw paints the meteor with glyph. Cells off the surface are clipped by it.
func (m Meteor) Draw(s core.Surface, glyph rune) {
	for _, c := range m.Cells() {
		s.DrawAt(c.Row, c.Col, glyph)
	}
}

// Erase clears every cell the meteor paints, not only its center.
func (m Meteor) Erase(s core.Surface) {
	for _, c := range m.Cells() {
		s.EraseAt(c.Row, c.Col)
	}
}
