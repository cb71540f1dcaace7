package input

import "snaketerm/internal/game"

// queueCapacity bounds buffered direction intents. Two slots are enough for
// a corner turn (two quick presses) without letting stale input pile up.
const queueCapacity = 2

// Queue buffers direction intents between ticks. Admission filters out
// no-ops and reversals relative to the latest buffered intent so a burst of
// key repeats cannot turn the snake back on itself.
type Queue struct {
	pending []game.Direction
}

// Push offers a direction. current is the snake's live heading, used as the
// reference when nothing is queued. Redundant and reversing intents are
// dropped; at capacity the oldest queued intent is evicted so the buffer
// always holds the two most recent.
func (q *Queue) Push(d, current game.Direction) {
	ref := current
	if n := len(q.pending); n > 0 {
		ref = q.pending[n-1]
	}
	if d == ref || d == ref.Opposite() {
		return
	}
	if len(q.pending) == queueCapacity {
		copy(q.pending, q.pending[1:])
		q.pending = q.pending[:queueCapacity-1]
	}
	q.pending = append(q.pending, d)
}

// Pop removes and returns the oldest queued intent.
func (q *Queue) Pop() (game.Direction, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	d := q.pending[0]
	copy(q.pending, q.pending[1:])
	q.pending = q.pending[:len(q.pending)-1]
	return d, true
}

// Peek returns the oldest queued intent without removing it.
func (q *Queue) Peek() (game.Direction, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	return q.pending[0], true
}

// Len returns the number of buffered intents.
func (q *Queue) Len() int {
	return len(q.pending)
}
