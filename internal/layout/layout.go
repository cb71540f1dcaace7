// Package layout computes where the board and HUD land on the terminal and
// how long each tick should last.
package layout

import (
	"github.com/mattn/go-runewidth"

	"snaketerm/internal/i18n"
)

// HUDBottomPadding is the number of rows reserved below the board for the
// HUD (blank, score, info, blank, controls).
const HUDBottomPadding = 5

// Layout places the board on the terminal. All coordinates are 0-indexed
// screen cells.
type Layout struct {
	TermWidth  int
	TermHeight int
	MapWidth   int
	MapHeight  int
	OriginX    int
	OriginY    int
}

// MapRight returns the screen column of the board's right border.
func (l Layout) MapRight() int {
	return l.OriginX + l.MapWidth - 1
}

// MapBottom returns the screen row of the board's bottom border.
func (l Layout) MapBottom() int {
	return l.OriginY + l.MapHeight - 1
}

// BoardToScreen converts a board cell (border included, 0-indexed) to screen
// coordinates.
func (l Layout) BoardToScreen(x, y int) (int, int) {
	return l.OriginX + x, l.OriginY + y
}

// HUDScoreY is the screen row of the score line.
func (l Layout) HUDScoreY() int { return l.MapBottom() + 2 }

// HUDInfoY is the screen row of the best/pace/effect line.
func (l Layout) HUDInfoY() int { return l.MapBottom() + 3 }

// HUDControlsY is the screen row of the key legend.
func (l Layout) HUDControlsY() int { return l.MapBottom() + HUDBottomPadding }

// MinSize is the smallest terminal that fits the board plus HUD.
type MinSize struct {
	Width  int
	Height int
}

// SizeCheck reports a terminal that is too small, with the current and
// required dimensions for the warning screen.
type SizeCheck struct {
	CurrentWidth  int
	CurrentHeight int
	Minimum       MinSize
}

// MinTerminalSize computes the minimum terminal for a board. Width is driven
// by whichever is wider, the board or the localized controls legend, measured
// in display cells so CJK text counts double.
func MinTerminalSize(mapWidth, mapHeight int, lang i18n.Language) MinSize {
	w := runewidth.StringWidth(i18n.ControlsText(lang))
	if mapWidth > w {
		w = mapWidth
	}
	return MinSize{Width: w, Height: mapHeight + HUDBottomPadding}
}

// Compute centers the board horizontally and the board-plus-HUD block
// vertically. A nil SizeCheck means the terminal fits.
func Compute(termWidth, termHeight, mapWidth, mapHeight int, lang i18n.Language) (Layout, *SizeCheck) {
	minimum := MinTerminalSize(mapWidth, mapHeight, lang)
	if termWidth < minimum.Width || termHeight < minimum.Height {
		return Layout{}, &SizeCheck{
			CurrentWidth:  termWidth,
			CurrentHeight: termHeight,
			Minimum:       minimum,
		}
	}
	totalHeight := mapHeight + HUDBottomPadding
	return Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
		MapWidth:   mapWidth,
		MapHeight:  mapHeight,
		OriginX:    (termWidth - mapWidth) / 2,
		OriginY:    (termHeight - totalHeight) / 2,
	}, nil
}
