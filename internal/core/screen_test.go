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

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	if s.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '●', ColorBrightGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '●' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(3, 4) = %+v", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'X', ColorRed)

	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() left %+v at (2, 2)", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place the runes")
	}

	// Clipping at the right edge must not panic
	s.DrawText(8, 0, "long text")
	if s.Get(9, 0) != 'o' {
		t.Errorf("clipped text: got %q at (9, 0)", s.Get(9, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	if !strings.Contains(s.Row(1), "abc") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Get(4, 1) != 'a' {
		t.Errorf("centered text should start at x=4, got %q", s.Get(4, 1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)

	s.DrawBox(NewRect(0, 0, 10, 5))

	if s.Get(0, 0) != '┌' || s.Get(9, 0) != '┐' {
		t.Error("top corners missing")
	}
	if s.Get(0, 4) != '└' || s.Get(9, 4) != '┘' {
		t.Error("bottom corners missing")
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("edges missing")
	}
	if s.Get(5, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(1, 5, 3, '-')
	if s.Get(1, 5) != '-' || s.Get(3, 5) != '-' || s.Get(4, 5) != ' ' {
		t.Error("DrawHLine wrong extent")
	}

	s.DrawVLine(7, 2, 3, '|', ColorGray)
	if s.Get(7, 2) != '|' || s.Get(7, 4) != '|' || s.Get(7, 5) != ' ' {
		t.Error("DrawVLine wrong extent")
	}
	if s.GetCell(7, 3).Color != ColorGray {
		t.Error("DrawVLine lost its color")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize() -> %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}
	if s.Get(15, 8) != ' ' {
		t.Error("new area should be blank")
	}

	// Shrinking drops content outside the new bounds without panicking
	s.Resize(3, 3)
	if s.Get(2, 2) != 'X' {
		t.Error("content inside the new bounds should survive shrinking")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	want := "ab \ncd "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
