package game

import "math"

// Positions are continuous tile-unit coordinates (tile size 1.0).
// The constants below are the original pixel values scaled to the
// reference 24px tile.
const (
	// centerTolerance is the per-axis distance from a tile center within
	// which an entity counts as "at center" (2px at the reference tile).
	centerTolerance = 2.0 / 24.0

	// overshootNudge keeps an entity fractionally past the center it just
	// crossed so center detection stays stable across ticks.
	overshootNudge = 0.001
)

// mover reconciles a continuous position with discrete tile semantics.
// It is shared by the player and the ghosts, and is pure with respect to
// (position, direction, speed, maze passability).
type mover struct {
	X, Y  float64
	Dir   Direction
	Speed float64 // tiles per second
}

// Tile returns the entity's rounded tile coordinate.
func (m *mover) Tile() Tile {
	return Tile{X: int(math.Round(m.X)), Y: int(math.Round(m.Y))}
}

// MoveTo snaps the entity to the center of a tile.
func (m *mover) MoveTo(t Tile) {
	m.X = float64(t.X)
	m.Y = float64(t.Y)
}

// AtCenter reports whether the entity is within tolerance of the center
// of its current tile on both axes.
func (m *mover) AtCenter() bool {
	t := m.Tile()
	return math.Abs(m.X-float64(t.X)) < centerTolerance &&
		math.Abs(m.Y-float64(t.Y)) < centerTolerance
}

// CanMove reports whether the tile one step in the given direction from
// the entity's current tile is passable. DirNone never moves.
func (m *mover) CanMove(mz *Maze, d Direction) bool {
	if d == DirNone {
		return false
	}
	return mz.Passable(m.Tile().Add(d))
}

// Advance moves the entity along its current direction for one tick.
// If the direction is blocked the entity freezes at the current tile's
// center (the direction is retained so movement resumes as soon as a
// legal direction is chosen). Crossing a tile center clamps the position
// to that center plus a nudge in the travel direction.
func (m *mover) Advance(mz *Maze, dt float64) {
	t := m.Tile()
	cx, cy := float64(t.X), float64(t.Y)

	if !m.CanMove(mz, m.Dir) {
		m.X, m.Y = cx, cy
		return
	}

	dx, dy := m.Dir.Delta()
	step := m.Speed * dt

	preX, preY := m.X-cx, m.Y-cy
	m.X += float64(dx) * step
	m.Y += float64(dy) * step
	postX, postY := m.X-cx, m.Y-cy

	// Overshoot: the offset from the center changed sign along the axis
	// of travel, i.e. the entity crossed the center this tick.
	if crossed(preX, postX) || crossed(preY, postY) {
		m.X = cx + float64(dx)*overshootNudge
		m.Y = cy + float64(dy)*overshootNudge
	}
}

func crossed(pre, post float64) bool {
	return (pre < 0 && post > 0) || (pre > 0 && post < 0)
}
