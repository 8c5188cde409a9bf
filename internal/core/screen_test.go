package core

import (
	"strings"
	"testing"
)

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(25, 11)

	if s.Width() != 25 || s.Height() != 11 {
		t.Fatalf("dimensions = %dx%d, want 25x11", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 25) {
			t.Fatalf("row %d not blank after NewScreen: %q", y, s.Row(y))
		}
	}
}

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(8, 8)

	s.Set(3, 6, '#')
	if got := s.Get(3, 6); got != '#' {
		t.Errorf("Get(3, 6) = %q, want '#'", got)
	}

	// Writes past the edge drop silently; reads past it come back as
	// spaces.
	for _, pt := range []struct{ x, y int }{{-1, 0}, {8, 0}, {0, -1}, {0, 8}} {
		s.Set(pt.x, pt.y, 'Z')
		if got := s.Get(pt.x, pt.y); got != ' ' {
			t.Errorf("Get(%d, %d) out of bounds = %q, want space", pt.x, pt.y, got)
		}
	}
}

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(8, 8)

	s.SetColored(1, 2, 'M', ColorBrightBlue)
	cell := s.GetCell(1, 2)
	if cell.Rune != 'M' || cell.Color != ColorBrightBlue {
		t.Errorf("GetCell(1, 2) = %+v, want bright blue 'M'", cell)
	}

	// Set writes in the default color, replacing any previous color.
	s.Set(1, 2, 'x')
	if got := s.GetCell(1, 2).Color; got != ColorDefault {
		t.Errorf("color after Set = %d, want ColorDefault", got)
	}

	oob := s.GetCell(99, 99)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, want default space", oob)
	}
}

func TestScreenClearResetsEveryCell(t *testing.T) {
	s := NewScreen(6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			s.SetColored(x, y, '#', ColorBlue)
		}
	}

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if cell := s.GetCell(x, y); cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) after Clear = %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(12, 3)

	s.DrawText(1, 1, "Score: 10")
	if got := s.Row(1); !strings.Contains(got, "Score: 10") {
		t.Errorf("row 1 = %q, want it to contain the drawn text", got)
	}

	// Only the first two runes fit.
	s.DrawText(10, 0, "Paused")
	if s.Get(10, 0) != 'P' || s.Get(11, 0) != 'a' {
		t.Error("text should clip at the right edge, keeping what fits")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	// 3 runes centered on 11 cells start at column 4.
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawHLine(0, 1, 10, '─')
	if s.Row(1) != strings.Repeat("─", 10) {
		t.Errorf("HLine row = %q", s.Row(1))
	}

	s.DrawVLine(4, 2, 3, '|')
	for y := 2; y < 5; y++ {
		if s.Get(4, y) != '|' {
			t.Errorf("VLine missing at (4, %d)", y)
		}
	}
}

func TestScreenStringJoinsRows(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "#.#")
	s.DrawText(0, 1, "o.o")

	if got := s.String(); got != "#.#\no.o" {
		t.Errorf("String() = %q, want %q", got, "#.#\no.o")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Lives: 3")
	s.DrawText(0, 7, "gone after shrink")

	s.Resize(9, 5)
	if s.Width() != 9 || s.Height() != 5 {
		t.Fatalf("dimensions after shrink = %dx%d, want 9x5", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Lives: 3") {
		t.Errorf("top-left content lost on shrink: %q", s.Row(0))
	}

	s.Resize(20, 12)
	if !strings.HasPrefix(s.Row(0), "Lives: 3") {
		t.Errorf("content lost on grow: %q", s.Row(0))
	}
	if s.Row(11) != strings.Repeat(" ", 20) {
		t.Errorf("new rows should be blank, got %q", s.Row(11))
	}
}

func TestScreenRowBounds(t *testing.T) {
	s := NewScreen(7, 3)
	s.DrawText(0, 1, "pellets")

	if got := s.Row(1); got != "pellets" {
		t.Errorf("Row(1) = %q, want %q", got, "pellets")
	}
	for _, y := range []int{-1, 3} {
		if got := s.Row(y); got != strings.Repeat(" ", 7) {
			t.Errorf("Row(%d) = %q, want all spaces", y, got)
		}
	}
}
