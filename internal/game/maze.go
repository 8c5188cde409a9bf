// Package game implements the maze-chase simulation: a static tile grid,
// a shared continuous-position movement primitive, the player, the
// pursuing ghosts, and the fixed-timestep round orchestrator. The package
// has no external dependencies so the simulation stays deterministic and
// testable headless.
package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// ErrInvalidLayout is returned when an ASCII layout cannot be parsed into
// a playable maze.
var ErrInvalidLayout = errors.New("invalid maze layout")

// Tile identifies a grid cell by integer column and row.
type Tile struct {
	X, Y int
}

// Add returns the tile one step away in the given direction.
func (t Tile) Add(d Direction) Tile {
	dx, dy := d.Delta()
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// Manhattan returns the L1 distance between two tiles.
func (t Tile) Manhattan(o Tile) int {
	return core.Abs(t.X-o.X) + core.Abs(t.Y-o.Y)
}

// Maze is the static grid model for one round. It owns the collectible
// sets exclusively; Consume is the only mutator.
//
// Layout legend: '#' wall, '.' pellet, 'o' power pellet, 'P' player
// spawn (last one wins), 'G' ghost spawn (collected in row-major scan
// order), anything else is empty floor.
type Maze struct {
	width  int
	height int

	walls   map[Tile]struct{}
	pellets map[Tile]struct{}
	power   map[Tile]struct{}

	playerSpawn Tile
	ghostSpawns []Tile
}

// ParseMaze builds a Maze from equal-length text rows.
// Rows of unequal length, a missing player spawn, or a missing ghost
// spawn are construction failures wrapping ErrInvalidLayout.
func ParseMaze(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	m := &Maze{
		width:   len(rows[0]),
		height:  len(rows),
		walls:   make(map[Tile]struct{}),
		pellets: make(map[Tile]struct{}),
		power:   make(map[Tile]struct{}),
	}

	haveSpawn := false
	for y, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("%w: row %d is %d columns, expected %d", ErrInvalidLayout, y, len(row), m.width)
		}
		for x, ch := range row {
			t := Tile{X: x, Y: y}
			switch ch {
			case '#':
				m.walls[t] = struct{}{}
			case '.':
				m.pellets[t] = struct{}{}
			case 'o':
				m.power[t] = struct{}{}
			case 'P':
				m.playerSpawn = t
				haveSpawn = true
			case 'G':
				m.ghostSpawns = append(m.ghostSpawns, t)
			}
		}
	}

	if !haveSpawn {
		return nil, fmt.Errorf("%w: no player spawn", ErrInvalidLayout)
	}
	if len(m.ghostSpawns) == 0 {
		return nil, fmt.Errorf("%w: no ghost spawns", ErrInvalidLayout)
	}

	return m, nil
}

// mustParse is for the compiled-in layouts, which are covered by tests.
func mustParse(rows []string) *Maze {
	m, err := ParseMaze(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the maze width in tiles.
func (m *Maze) Width() int { return m.width }

// Height returns the maze height in tiles.
func (m *Maze) Height() int { return m.height }

// PlayerSpawn returns the player's spawn tile.
func (m *Maze) PlayerSpawn() Tile { return m.playerSpawn }

// GhostSpawns returns the ghost spawn tiles in layout scan order.
func (m *Maze) GhostSpawns() []Tile { return m.ghostSpawns }

// InBounds reports whether the tile lies inside the grid.
// Total: any tile is a valid argument.
func (m *Maze) InBounds(t Tile) bool {
	return t.X >= 0 && t.X < m.width && t.Y >= 0 && t.Y < m.height
}

// Passable reports whether an entity may occupy the tile.
// Out-of-bounds tiles are not passable.
func (m *Maze) Passable(t Tile) bool {
	if !m.InBounds(t) {
		return false
	}
	_, wall := m.walls[t]
	return !wall
}

// IsWall reports whether the tile is a wall.
func (m *Maze) IsWall(t Tile) bool {
	_, ok := m.walls[t]
	return ok
}

// Neighbors returns the passable cardinal neighbors of the tile, in the
// fixed scan order {+x, -x, +y, -y}.
func (m *Maze) Neighbors(t Tile) []Tile {
	res := make([]Tile, 0, 4)
	for _, d := range scanOrder {
		n := t.Add(d)
		if m.Passable(n) {
			res = append(res, n)
		}
	}
	return res
}

// HasPellet reports whether a pellet remains on the tile.
func (m *Maze) HasPellet(t Tile) bool {
	_, ok := m.pellets[t]
	return ok
}

// HasPowerPellet reports whether a power pellet remains on the tile.
func (m *Maze) HasPowerPellet(t Tile) bool {
	_, ok := m.power[t]
	return ok
}

// Consume removes any collectible on the tile and reports what was
// eaten. It is the only mutator of the collectible sets; consuming an
// already-empty tile reports nothing.
func (m *Maze) Consume(t Tile) (pellet, power bool) {
	if _, ok := m.pellets[t]; ok {
		delete(m.pellets, t)
		pellet = true
	}
	if _, ok := m.power[t]; ok {
		delete(m.power, t)
		power = true
	}
	return pellet, power
}

// PelletsLeft returns the number of remaining pellets.
func (m *Maze) PelletsLeft() int { return len(m.pellets) }

// PowerPelletsLeft returns the number of remaining power pellets.
func (m *Maze) PowerPelletsLeft() int { return len(m.power) }

// Cleared reports whether every collectible has been consumed.
func (m *Maze) Cleared() bool {
	return len(m.pellets) == 0 && len(m.power) == 0
}
