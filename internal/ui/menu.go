package ui

import (
	"github.com/mattn/go-runewidth"

	"snaketerm/internal/i18n"
)

// MenuFrame is a full description of one menu screen. The renderer compares
// it against the last frame it drew and skips identical redraws, so the menu
// loop can submit a frame every pass without flicker.
type MenuFrame struct {
	Title      string
	Options    []string
	Selected   int
	Hints      []string
	Lang       i18n.Language
	TermWidth  int
	TermHeight int
}

func (f *MenuFrame) equal(o *MenuFrame) bool {
	if o == nil ||
		f.Title != o.Title ||
		f.Selected != o.Selected ||
		f.Lang != o.Lang ||
		f.TermWidth != o.TermWidth ||
		f.TermHeight != o.TermHeight ||
		len(f.Options) != len(o.Options) ||
		len(f.Hints) != len(o.Hints) {
		return false
	}
	for i := range f.Options {
		if f.Options[i] != o.Options[i] {
			return false
		}
	}
	for i := range f.Hints {
		if f.Hints[i] != o.Hints[i] {
			return false
		}
	}
	return true
}

func (f *MenuFrame) clone() *MenuFrame {
	c := *f
	c.Options = append([]string(nil), f.Options...)
	c.Hints = append([]string(nil), f.Hints...)
	return &c
}

// DrawMenu paints a menu screen. Identical consecutive frames are skipped.
func (r *Renderer) DrawMenu(frame MenuFrame) {
	if frame.equal(r.lastMenu) {
		return
	}
	r.lastMenu = frame.clone()

	s := r.screen
	s.Clear()

	total := 2 + len(frame.Options) + 1 + len(frame.Hints)
	top := (frame.TermHeight - total) / 2
	if top < 0 {
		top = 0
	}

	r.putTextCentered(top, frame.TermWidth, styleTitle, frame.Title)
	y := top + 2
	for i, opt := range frame.Options {
		style := styleDefault
		text := "  " + opt + "  "
		if i == frame.Selected {
			style = styleSelected
			text = "> " + opt + " <"
		}
		r.putTextCentered(y, frame.TermWidth, style, text)
		y++
	}
	y++
	for _, hint := range frame.Hints {
		r.putTextCentered(y, frame.TermWidth, styleHint, hint)
		y++
	}
	s.Show()
}

func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// truncateToWidth cuts s to at most w display cells.
func truncateToWidth(s string, w int) string {
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "")
}
