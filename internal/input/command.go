// Package input translates terminal events into game commands and owns the
// bounded direction queue that decouples key-repeat rate from tick rate.
package input

import "snaketerm/internal/game"

// Kind discriminates Command payloads.
type Kind int

const (
	KindDirection Kind = iota
	KindPause
	KindQuit
	KindToggleMute
	KindMenuSelect
	KindMenuConfirm
	KindResize
	KindFocusLost
	KindCopyReport
)

// Command is one unit of player or terminal intent delivered over the input
// channel. Dir is set for KindDirection, Index for KindMenuSelect, and
// Width/Height for KindResize.
type Command struct {
	Kind   Kind
	Dir    game.Direction
	Index  int
	Width  int
	Height int
}
