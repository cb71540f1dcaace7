package game

// minSnakeLen is the spawn length; Shrink effects never cut below it.
const minSnakeLen = 3

// Snake is the player body. Head at index 0, tail at the last index.
type Snake struct {
	Body      []Position
	Direction Direction
}

// NewSnake spawns a 3-segment body centered on the board, heading Left.
func NewSnake(width, height int) *Snake {
	cx, cy := width/2, height/2
	return &Snake{
		Body:      []Position{{cx, cy}, {cx + 1, cy}, {cx + 2, cy}},
		Direction: Left,
	}
}

// Head returns the current head position.
func (s *Snake) Head() Position {
	return s.Body[0]
}

// NextHead computes the head's next cell for the current heading without
// mutating the body. A step that would land on the border re-enters from the
// opposite interior edge, so the body stays inside [1, width-2] x [1, height-2].
func (s *Snake) NextHead(width, height int) Position {
	next := s.Head()
	switch s.Direction {
	case Up:
		next.Y--
	case Down:
		next.Y++
	case Left:
		next.X--
	case Right:
		next.X++
	}
	if next.X <= 0 {
		next.X = width - 2
	} else if next.X >= width-1 {
		next.X = 1
	}
	if next.Y <= 0 {
		next.Y = height - 2
	} else if next.Y >= height-1 {
		next.Y = 1
	}
	return next
}

// MoveForward inserts NextHead at index 0 and, unless growing, drops the
// tail: the body translates one cell, or lengthens by one when grow is set.
func (s *Snake) MoveForward(grow bool, width, height int) {
	next := s.NextHead(width, height)
	s.Body = append(s.Body, Position{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = next
	if !grow {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// ChangeDirection updates the heading unless the new direction is the exact
// reverse of the current one. Reversals are silently ignored.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.Direction.Opposite() {
		return
	}
	s.Direction = d
}

// OverlapsWith reports whether any body segment occupies pos. Used for
// self-collision and for spawn-placement exclusion.
func (s *Snake) OverlapsWith(pos Position) bool {
	for _, seg := range s.Body {
		if seg == pos {
			return true
		}
	}
	return false
}
