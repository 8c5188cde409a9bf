package game

// Direction is one of the four grid-aligned unit steps, or none.
// Never diagonal.
type Direction int

const (
	DirNone Direction = iota
	DirRight
	DirLeft
	DirDown
	DirUp
)

// scanOrder is the fixed direction order {+x, -x, +y, -y}. It is the
// single source of iteration order for neighbor queries and the
// tie-break order for the chase policy.
var scanOrder = [4]Direction{DirRight, DirLeft, DirDown, DirUp}

// Delta returns the tile-space unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no reverse.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	case DirUp:
		return DirDown
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	default:
		return "none"
	}
}
