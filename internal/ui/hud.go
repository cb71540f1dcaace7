package ui

import (
	"fmt"

	"snaketerm/internal/game"
	"snaketerm/internal/i18n"
	"snaketerm/internal/layout"
)

// HUDState carries the presentation inputs the engine does not own.
type HUDState struct {
	Lang i18n.Language
}

func (r *Renderer) drawHUD(g *game.Game, lay layout.Layout, hud HUDState) {
	lang := hud.Lang

	score := fmt.Sprintf("%s: %d  %s: %s",
		i18n.StatusScoreLabel(lang), g.Score,
		i18n.StatusDifficultyLabel(lang), i18n.DifficultyLabel(lang, g.Difficulty))
	if g.Paused() {
		score += "  [" + i18n.StatusPaused(lang) + "]"
	}
	if g.Muted {
		score += "  [" + i18n.StatusMuted(lang) + "]"
	}

	pace := g.DifficultySpeedMultiplierPercent() * g.SpeedMultiplierPercent() / 100
	info := fmt.Sprintf("%s: %d  %s: %d%%",
		i18n.InfoBestLabel(lang), g.HighScore,
		i18n.InfoPaceLabel(lang), pace)
	if kind, ok := g.ActiveSpeedEffect(); ok {
		info += fmt.Sprintf("  %s: %s(%d)",
			i18n.InfoEffectLabel(lang), i18n.SpeedEffectShort(lang, kind), g.SpeedEffectTicksLeft())
	}

	r.clearRow(lay.HUDScoreY(), lay.TermWidth)
	r.putTextCentered(lay.HUDScoreY(), lay.TermWidth, styleDefault, score)
	r.clearRow(lay.HUDInfoY(), lay.TermWidth)
	r.putTextCentered(lay.HUDInfoY(), lay.TermWidth, styleSubtitle, info)
	r.clearRow(lay.HUDControlsY(), lay.TermWidth)
	r.putTextCentered(lay.HUDControlsY(), lay.TermWidth, styleHint, i18n.ControlsText(lang))
}

// drawGameOverPanel boxes the final score over the middle of the board.
func (r *Renderer) drawGameOverPanel(g *game.Game, lay layout.Layout, hud HUDState) {
	lang := hud.Lang
	lines := []string{
		i18n.GameOverTitle(lang),
		fmt.Sprintf("%s: %d", i18n.StatusScoreLabel(lang), g.Score),
		i18n.GameOverMenuHint(lang),
		i18n.GameOverQuitHint(lang),
	}

	width := 0
	for _, s := range lines {
		if w := textWidth(s); w > width {
			width = w
		}
	}
	width += 4
	if width < 10 {
		width = 10
	}
	if width > g.Width-2 {
		width = g.Width - 2
	}
	height := len(lines) + 3

	left := (g.Width - width) / 2
	top := (g.Height - height) / 2

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sx, sy := lay.BoardToScreen(left+col, top+row)
			ch := ' '
			switch {
			case (row == 0 || row == height-1) && (col == 0 || col == width-1):
				ch = '+'
			case row == 0 || row == height-1:
				ch = '-'
			case col == 0 || col == width-1:
				ch = '|'
			}
			r.screen.SetContent(sx, sy, ch, nil, styleWarn)
		}
	}

	for i, s := range lines {
		style := styleDefault
		if i == 0 {
			style = styleWarn
		}
		sx, sy := lay.BoardToScreen(left+(width-textWidth(s))/2, top+2+i)
		r.putText(sx, sy, style, truncateToWidth(s, width-2))
	}
}

// DrawSizeWarning replaces the whole screen with the too-small notice.
func (r *Renderer) DrawSizeWarning(check layout.SizeCheck, lang i18n.Language) {
	r.lastMenu = nil
	r.screen.Clear()
	w, h := check.CurrentWidth, check.CurrentHeight
	mid := h / 2

	r.putTextCentered(mid-2, w, styleWarn, i18n.SmallWindowTitle(lang))
	r.putTextCentered(mid, w, styleDefault, fmt.Sprintf("%s: %dx%d",
		i18n.SmallWindowCurrentLabel(lang), check.CurrentWidth, check.CurrentHeight))
	r.putTextCentered(mid+1, w, styleDefault, fmt.Sprintf("%s: %dx%d",
		i18n.SmallWindowMinimumLabel(lang), check.Minimum.Width, check.Minimum.Height))
	r.putTextCentered(mid+3, w, styleHint, i18n.SmallWindowHint(lang))
	r.screen.Show()
}
