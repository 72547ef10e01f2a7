// Package core provides fundamental types and utilities for the meteors game.
// It contains no external dependencies (especially no Bubble Tea or tcell) to
// keep game logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds is returned when a playfield has a non-positive dimension.
var ErrInvalidBounds = errors.New("core: invalid bounds")

// Point is a cell position on the grid, addressed row first like a terminal.
type Point struct {
	Row, Col int
}

// Add returns p translated by (dRow, dCol).
func (p Point) Add(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Bounds is the size of the playfield in cells.
type Bounds struct {
	Height int
	Width  int
}

// NewBounds validates and returns a Bounds value.
func NewBounds(height, width int) (Bounds, error) {
	b := Bounds{Height: height, Width: width}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Validate reports ErrInvalidBounds if either dimension is not positive.
func (b Bounds) Validate() error {
	if b.Height <= 0 || b.Width <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, b.Height, b.Width)
	}
	return nil
}

// Contains returns true if p lies inside [0,Height) x [0,Width).
func (b Bounds) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.Height && p.Col >= 0 && p.Col < b.Width
}

// Clip moves p onto the nearest cell inside the bounds.
func (b Bounds) Clip(p Point) Point {
	return Point{
		Row: Clamp(p.Row, 0, b.Height-1),
		Col: Clamp(p.Col, 0, b.Width-1),
	}
}

// Center returns the middle cell of the bounds.
func (b Bounds) Center() Point {
	return Point{Row: b.Height / 2, Col: b.Width / 2}
}

// Rect represents an axis-aligned box, used for HUD overlays.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// FloorMod returns a mod m in [0, m) for any sign of a. m must be positive.
func FloorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
