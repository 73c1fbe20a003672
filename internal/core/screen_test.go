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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen should render as empty string, got %q", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetCell(6, 5, 'Y', ColorRed)
	if cell := s.GetCell(6, 5); cell.Rune != 'Y' || cell.Color != ColorRed {
		t.Errorf("GetCell(6, 5) = %+v, expected red 'Y'", cell)
	}

	// Set keeps the existing color
	s.Set(6, 5, 'Z')
	if cell := s.GetCell(6, 5); cell.Rune != 'Z' || cell.Color != ColorRed {
		t.Errorf("Set should keep color, got %+v", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, 'A', ColorGreen)
	s.SetCell(0, 100, 'A', ColorGreen)

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(0, 0, 10, 10, 'X', ColorYellow)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if cell := s.GetCell(x, y); cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	expected := "Hello"
	for i, ch := range expected {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != ch || cell.Color != ColorWhite {
			t.Errorf("DrawText: expected white %q at (%d, 1), got %+v", ch, 2+i, cell)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "é●x", ColorDefault)
	if s.Get(0, 0) != 'é' || s.Get(1, 0) != '●' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text should occupy one cell per rune, got %q", s.Row(0))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 2, 5, 5, '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 6, 5, ColorWhite)

	// Check corners
	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.Get(5, 4))
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.Get(x, 1))
		}
		if s.Get(x, 4) != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, s.Get(x, 4))
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.Get(1, y))
		}
		if s.Get(5, y) != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, s.Get(5, y))
		}
	}

	// Interior untouched
	if s.Get(3, 2) != ' ' {
		t.Errorf("DrawBox should not fill interior, got %q", s.Get(3, 2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorRed)
	s.DrawText(0, 5, "World", ColorRed)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}
	if s.GetCell(0, 0).Color != ColorRed {
		t.Error("Color should be preserved across resize")
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
