package types

// Direction represents a cardinal direction
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Delta converts a Direction into a movement vector scaled by cellSize
func (d Direction) Delta(cellSize int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cellSize}
	case Right:
		return Point{X: cellSize, Y: 0}
	case Down:
		return Point{X: 0, Y: cellSize}
	case Left:
		return Point{X: -cellSize, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// IsReverseOf reports whether d points exactly against other
func (d Direction) IsReverseOf(other Direction) bool {
	return d != None && d == other.Opposite()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// ResolveDirection decides whether a requested turn may replace the current
// heading. Every input source goes through here.
func ResolveDirection(current, requested Direction) bool {
	if requested == None {
		return false
	}
	return !requested.IsReverseOf(current)
}
