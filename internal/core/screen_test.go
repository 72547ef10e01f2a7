package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	if b := s.Bounds(); b.Height != 24 || b.Width != 80 {
		t.Errorf("Bounds() = %+v, expected 24x80", b)
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != Blank {
				t.Errorf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != Blank {
		t.Error("Out of bounds Get should return blank")
	}
	if s.Get(100, 0) != Blank {
		t.Error("Out of bounds Get should return blank")
	}
}

func TestScreenSurfaceCoordinates(t *testing.T) {
	s := NewScreen(10, 6)

	// Surface methods are (row, col); Set/Get are (x, y)
	s.DrawAt(2, 7, '*')
	if s.Get(7, 2) != '*' {
		t.Errorf("DrawAt(2, 7) should land on x=7,y=2, got %q", s.Get(7, 2))
	}
	if s.GlyphAt(2, 7) != '*' {
		t.Errorf("GlyphAt(2, 7) = %q, expected '*'", s.GlyphAt(2, 7))
	}
	if c := s.GetCell(7, 2); c.Color != ColorMeteor {
		t.Errorf("DrawAt should use ColorMeteor, got %d", c.Color)
	}

	s.EraseAt(2, 7)
	if s.GlyphAt(2, 7) != Blank {
		t.Errorf("EraseAt should blank the cell, got %q", s.GlyphAt(2, 7))
	}

	// Writes in limbo rows/cols are dropped
	s.DrawAt(-1, 3, '*')
	s.DrawAt(6, 3, '*')
	s.DrawAt(3, 10, '*')
	if s.GlyphAt(-1, 3) != Blank || s.GlyphAt(6, 3) != Blank || s.GlyphAt(3, 10) != Blank {
		t.Error("Out of bounds surface reads should return blank")
	}
}

func TestScreenCursor(t *testing.T) {
	s := NewScreen(10, 5)

	s.MoveCursor(2, 3)
	if got := s.Cursor(); got != (Point{Row: 2, Col: 3}) {
		t.Fatalf("Cursor() = %+v, expected (2,3)", got)
	}

	tests := []struct {
		name     string
		row, col int
	}{
		{"above", -1, 3},
		{"below", 5, 3},
		{"left", 2, -1},
		{"right", 2, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.MoveCursor(tc.row, tc.col)
			if got := s.Cursor(); got != (Point{Row: 2, Col: 3}) {
				t.Errorf("MoveCursor(%d, %d) should be ignored, cursor at %+v", tc.row, tc.col, got)
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != Blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.Get(5, 4))
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.Get(x, 1))
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.Get(1, y))
		}
	}
}

func TestScreenDrawFrame(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawFrame()

	expected := ",----,\n|    |\n|    |\n'----'"
	if got := s.String(); got != expected {
		t.Errorf("DrawFrame() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenBlit(t *testing.T) {
	dst := NewScreen(6, 3)
	src := NewScreen(3, 2)
	src.DrawAt(0, 0, '*')
	src.DrawAt(1, 2, '*')

	dst.Blit(src, 4, 1)

	if dst.Get(4, 1) != '*' {
		t.Errorf("Blit should copy (0,0) to (4,1), got %q", dst.Get(4, 1))
	}
	// (1,2) of src lands at x=6, outside dst
	if dst.Row(2) != "      " {
		t.Errorf("Blit should clip at the right edge, row 2 = %q", dst.Row(2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.MoveCursor(9, 9)

	// Resize smaller - should preserve top-left content and clip the cursor
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}
	if got := s.Cursor(); got != (Point{Row: 3, Col: 7}) {
		t.Errorf("Cursor should be clipped to (3,7), got %+v", got)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
