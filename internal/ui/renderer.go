// Package ui renders the board, HUD, and menus onto a tcell screen. The game
// loop repaints only cells the engine marked dirty; full repaints happen on
// layout changes and menu transitions.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"snaketerm/internal/game"
	"snaketerm/internal/layout"
)

var (
	styleDefault  = tcell.StyleDefault
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSubtitle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleFood     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleWarn     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var powerUpGlyphs = [...]struct {
	r     rune
	style tcell.Style
}{
	game.SpeedBoost:  {'>', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	game.SlowDown:    {'<', tcell.StyleDefault.Foreground(tcell.ColorAqua)},
	game.ExtraPoints: {'$', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	game.Grow:        {'+', tcell.StyleDefault.Foreground(tcell.ColorLime)},
	game.Shrink:      {'-', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
}

// Renderer owns the screen plus the last drawn menu frame, so identical menu
// frames are not redrawn.
type Renderer struct {
	screen   tcell.Screen
	lastMenu *MenuFrame
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// putText writes s starting at (x,y), advancing by display width so wide
// runes occupy two cells. Returns the column after the last rune.
func (r *Renderer) putText(x, y int, style tcell.Style, s string) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

// putTextCentered writes s centered on the terminal row y.
func (r *Renderer) putTextCentered(y, termWidth int, style tcell.Style, s string) {
	x := (termWidth - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	r.putText(x, y, style, s)
}

// clearRow blanks an entire terminal row.
func (r *Renderer) clearRow(y, termWidth int) {
	for x := 0; x < termWidth; x++ {
		r.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
}

func snakeGlyph(index, length int) (rune, tcell.Style) {
	switch {
	case index == 0:
		return '█', tcell.StyleDefault.Foreground(tcell.ColorLime)
	case index < length/3:
		return '■', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case index < 2*length/3:
		return '■', tcell.StyleDefault.Foreground(tcell.ColorOlive)
	default:
		return '■', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

func foodGlyph(score int) (rune, tcell.Style) {
	// At every 50-point milestone the next food sparkles.
	if score != 0 && score%50 == 0 {
		return '★', styleFood
	}
	return '●', styleFood
}

// paintCell draws the board cell at board coordinates (x,y) for the current
// game state.
func (r *Renderer) paintCell(g *game.Game, lay layout.Layout, x, y int, bodyIndex map[game.Position]int) {
	sx, sy := lay.BoardToScreen(x, y)
	p := game.Position{X: x, Y: y}

	if x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1 {
		r.screen.SetContent(sx, sy, borderRune(x, y, g.Width, g.Height), nil, styleBorder)
		return
	}
	if idx, ok := bodyIndex[p]; ok {
		ch, style := snakeGlyph(idx, len(g.Snake.Body))
		r.screen.SetContent(sx, sy, ch, nil, style)
		return
	}
	if p == g.Food {
		ch, style := foodGlyph(g.Score)
		r.screen.SetContent(sx, sy, ch, nil, style)
		return
	}
	if g.PowerUp != nil && g.PowerUp.Active && g.PowerUp.Position == p {
		gl := powerUpGlyphs[g.PowerUp.Type]
		r.screen.SetContent(sx, sy, gl.r, nil, gl.style.Bold(true))
		return
	}
	r.screen.SetContent(sx, sy, ' ', nil, styleDefault)
}

func borderRune(x, y, width, height int) rune {
	switch {
	case x == 0 && y == 0:
		return '┌'
	case x == width-1 && y == 0:
		return '┐'
	case x == 0 && y == height-1:
		return '└'
	case x == width-1 && y == height-1:
		return '┘'
	case y == 0 || y == height-1:
		return '─'
	default:
		return '│'
	}
}

func indexBody(g *game.Game) map[game.Position]int {
	idx := make(map[game.Position]int, len(g.Snake.Body))
	// Walk back to front so the head wins when segments overlap after Grow.
	for i := len(g.Snake.Body) - 1; i >= 0; i-- {
		idx[g.Snake.Body[i]] = i
	}
	return idx
}

// DrawGame repaints the cells the engine marked dirty, refreshes the HUD,
// and overlays the game-over panel when the round has ended.
func (r *Renderer) DrawGame(g *game.Game, lay layout.Layout, hud HUDState) {
	r.lastMenu = nil
	bodyIndex := indexBody(g)
	for _, p := range g.DrainDirty() {
		if p.X < 0 || p.Y < 0 || p.X >= g.Width || p.Y >= g.Height {
			continue
		}
		r.paintCell(g, lay, p.X, p.Y, bodyIndex)
	}
	r.drawHUD(g, lay, hud)
	if g.GameOver {
		r.drawGameOverPanel(g, lay, hud)
	}
	r.screen.Show()
}

// DrawStaticFrame repaints everything from scratch. Used when the layout
// changes or when returning from a menu.
func (r *Renderer) DrawStaticFrame(g *game.Game, lay layout.Layout, hud HUDState) {
	r.lastMenu = nil
	r.screen.Clear()
	bodyIndex := indexBody(g)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r.paintCell(g, lay, x, y, bodyIndex)
		}
	}
	g.DrainDirty()
	r.drawHUD(g, lay, hud)
	if g.GameOver {
		r.drawGameOverPanel(g, lay, hud)
	}
	r.screen.Show()
}
