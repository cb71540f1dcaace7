package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaketerm/internal/game"
)

func TestQueue_DropsRedundantAndReversingIntents(t *testing.T) {
	var q Queue

	q.Push(game.Left, game.Left)
	assert.Equal(t, 0, q.Len(), "same-as-heading intent must be dropped")

	q.Push(game.Right, game.Left)
	assert.Equal(t, 0, q.Len(), "reversal of heading must be dropped")

	q.Push(game.Up, game.Left)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_FiltersAgainstLastQueuedIntent(t *testing.T) {
	var q Queue
	q.Push(game.Up, game.Left)

	// Heading is Left, but the reference is now the queued Up.
	q.Push(game.Up, game.Left)
	assert.Equal(t, 1, q.Len(), "duplicate of queued intent must be dropped")
	q.Push(game.Down, game.Left)
	assert.Equal(t, 1, q.Len(), "reversal of queued intent must be dropped")

	q.Push(game.Right, game.Left)
	assert.Equal(t, 2, q.Len())
}

func TestQueue_AtCapacityEvictsOldest(t *testing.T) {
	var q Queue
	q.Push(game.Up, game.Left)
	q.Push(game.Right, game.Left)
	require.Equal(t, 2, q.Len())

	// Down is valid against the newest queued intent (Right); Up gets evicted.
	q.Push(game.Down, game.Left)
	require.Equal(t, 2, q.Len())

	d, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, game.Right, d)
	d, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, game.Down, d)
}

func TestQueue_PopAndPeekOrder(t *testing.T) {
	var q Queue
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)

	q.Push(game.Up, game.Left)
	q.Push(game.Right, game.Left)

	d, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, game.Up, d)
	assert.Equal(t, 2, q.Len(), "peek must not consume")

	d, _ = q.Pop()
	assert.Equal(t, game.Up, d)
	d, _ = q.Pop()
	assert.Equal(t, game.Right, d)
	assert.Equal(t, 0, q.Len())
}
