package game

import (
	"errors"
	"testing"
)

func TestParseMazeErrors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged rows", []string{"####", "#P.G#", "####"}},
		{"no player spawn", []string{"#####", "#..G#", "#####"}},
		{"no ghost spawns", []string{"#####", "#P..#", "#####"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMaze(tc.rows)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("error should wrap ErrInvalidLayout, got %v", err)
			}
		})
	}
}

func TestParseMazeSpawns(t *testing.T) {
	m, err := ParseMaze([]string{
		"#####",
		"#P.G#",
		"#.#.#",
		"#G..#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseMaze: %v", err)
	}

	if m.PlayerSpawn() != (Tile{X: 1, Y: 1}) {
		t.Errorf("player spawn should be (1,1), got %v", m.PlayerSpawn())
	}

	// Ghost spawns collected in row-major scan order
	spawns := m.GhostSpawns()
	if len(spawns) != 2 {
		t.Fatalf("expected 2 ghost spawns, got %d", len(spawns))
	}
	if spawns[0] != (Tile{X: 3, Y: 1}) || spawns[1] != (Tile{X: 1, Y: 3}) {
		t.Errorf("ghost spawns out of scan order: %v", spawns)
	}
}

func TestPassableIsTotal(t *testing.T) {
	m := mustParse([]string{
		"#####",
		"#P.G#",
		"#####",
	})

	outOfBounds := []Tile{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 5, Y: 1}, {X: 1, Y: 3}, {X: -100, Y: 100},
	}
	for _, tile := range outOfBounds {
		if m.InBounds(tile) {
			t.Errorf("%v should be out of bounds", tile)
		}
		if m.Passable(tile) {
			t.Errorf("%v should not be passable", tile)
		}
	}

	if m.Passable(Tile{X: 0, Y: 0}) {
		t.Error("walls should not be passable")
	}
	if !m.Passable(Tile{X: 2, Y: 1}) {
		t.Error("floor should be passable")
	}
}

func TestNeighborsScanOrder(t *testing.T) {
	m := mustParse([]string{
		"#####",
		"#.P.#",
		"#.G.#",
		"#####",
	})

	// From (2,1): right, left, and down are open; up is a wall.
	want := []Tile{{X: 3, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	got := m.Neighbors(Tile{X: 2, Y: 1})
	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestConsumeIsSoleMutator(t *testing.T) {
	m := mustParse([]string{
		"#####",
		"#P.o#",
		"#..G#",
		"#####",
	})

	pelletsBefore := m.PelletsLeft()
	powerBefore := m.PowerPelletsLeft()

	pellet, power := m.Consume(Tile{X: 2, Y: 1})
	if !pellet || power {
		t.Errorf("expected (pellet=true, power=false), got (%v, %v)", pellet, power)
	}
	if m.PelletsLeft() != pelletsBefore-1 {
		t.Errorf("pellet count should drop by 1: %d -> %d", pelletsBefore, m.PelletsLeft())
	}

	// Consuming the same tile again reports nothing.
	pellet, power = m.Consume(Tile{X: 2, Y: 1})
	if pellet || power {
		t.Error("second consume of the same tile should report nothing")
	}

	pellet, power = m.Consume(Tile{X: 3, Y: 1})
	if pellet || !power {
		t.Errorf("expected (pellet=false, power=true), got (%v, %v)", pellet, power)
	}
	if m.PowerPelletsLeft() != powerBefore-1 {
		t.Errorf("power count should drop by 1: %d -> %d", powerBefore, m.PowerPelletsLeft())
	}

	// Empty tiles (spawns, walls) consume to nothing.
	if p, pw := m.Consume(Tile{X: 1, Y: 1}); p || pw {
		t.Error("spawn tile should hold no collectible")
	}
	if p, pw := m.Consume(Tile{X: 0, Y: 0}); p || pw {
		t.Error("wall tile should hold no collectible")
	}
}

func TestCollectiblesDisjointFromWalls(t *testing.T) {
	for _, layout := range Layouts() {
		m := mustParse(layout.Rows)
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				tile := Tile{X: x, Y: y}
				if m.HasPellet(tile) && m.HasPowerPellet(tile) {
					t.Errorf("%s: %v holds both pellet kinds", layout.ID, tile)
				}
				if m.IsWall(tile) && (m.HasPellet(tile) || m.HasPowerPellet(tile)) {
					t.Errorf("%s: %v is a wall with a collectible", layout.ID, tile)
				}
			}
		}
	}
}

func TestBuiltinLayouts(t *testing.T) {
	if len(Layouts()) != 3 {
		t.Fatalf("expected 3 built-in layouts, got %d", len(Layouts()))
	}

	for _, layout := range Layouts() {
		m, err := ParseMaze(layout.Rows)
		if err != nil {
			t.Errorf("%s: failed to parse: %v", layout.ID, err)
			continue
		}
		if m.PelletsLeft() == 0 {
			t.Errorf("%s: no pellets", layout.ID)
		}
		if m.PowerPelletsLeft() == 0 {
			t.Errorf("%s: no power pellets", layout.ID)
		}
		if len(m.GhostSpawns()) == 0 {
			t.Errorf("%s: no ghost spawns", layout.ID)
		}
		if m.Cleared() {
			t.Errorf("%s: fresh maze reports cleared", layout.ID)
		}
	}

	if _, ok := LayoutByID("chomp"); !ok {
		t.Error("LayoutByID should find the classic layout")
	}
	if _, ok := LayoutByID("nope"); ok {
		t.Error("LayoutByID should miss unknown IDs")
	}
}

func TestManhattan(t *testing.T) {
	a := Tile{X: 2, Y: 3}
	b := Tile{X: 5, Y: 1}
	if a.Manhattan(b) != 5 {
		t.Errorf("expected distance 5, got %d", a.Manhattan(b))
	}
	if a.Manhattan(a) != 0 {
		t.Errorf("distance to self should be 0, got %d", a.Manhattan(a))
	}
	if a.Manhattan(b) != b.Manhattan(a) {
		t.Error("Manhattan distance should be symmetric")
	}
}
