package game

// Position is a board grid coordinate. The playable interior is 1-indexed;
// the 1-cell border occupies row/column 0 and width-1/height-1. Positions are
// plain values, copied freely and compared by ==.
type Position struct {
	X int
	Y int
}

// key packs a position into a single integer for set membership.
func (p Position) key() uint32 {
	return uint32(uint16(p.X))<<16 | uint32(uint16(p.Y))
}

// Direction is a snake heading.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return "unknown"
	}
	return directionNames[d]
}

var opposites = [...]Direction{Up: Down, Down: Up, Left: Right, Right: Left}

// Opposite returns the 180-degree reversal of d.
func (d Direction) Opposite() Direction {
	if d < Up || d > Right {
		return d
	}
	return opposites[d]
}

// Vertical reports whether d moves along the y axis. Vertical headings use
// the slower vertical base tick rate since character cells are taller than
// they are wide.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}
