package app

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"snaketerm/internal/game"
	"snaketerm/internal/input"
	"snaketerm/internal/layout"
	"snaketerm/internal/ui"
)

// screenBeeper adapts the terminal bell to the engine's Beeper interface.
type screenBeeper struct {
	screen tcell.Screen
}

func (b screenBeeper) Beep() {
	_ = b.screen.Beep()
}

// runGame plays one round. Returns true when the player quit the program,
// false when they returned to the menu.
func (a *App) runGame(difficulty game.Difficulty) (quit bool) {
	lang := a.cfg.Settings.Language
	hud := ui.HUDState{Lang: lang}

	g := game.New(difficulty, BoardWidth, BoardHeight, a.cfg.HighScores.Get(difficulty), screenBeeper{a.screen})
	if !a.cfg.Settings.SoundOn {
		g.Muted = true
	}
	a.log.WithField("difficulty", difficulty.String()).Info("round start")

	savedBest := a.cfg.HighScores.Get(difficulty)
	defer func() {
		if g.HighScore > savedBest {
			a.cfg.HighScores.Set(difficulty, g.HighScore)
			a.persistConfig()
		}
		a.log.WithField("score", g.Score).Info("round end")
	}()

	var queue input.Queue
	lay, check := layout.Compute(a.termWidth, a.termHeight, BoardWidth, BoardHeight, lang)
	if check == nil {
		a.renderer.DrawStaticFrame(g, lay, hud)
	}
	lastTick := time.Now()

	for {
		if g.GameOver {
			switch a.waitAtGameOver(g, &lay, &check, hud) {
			case gameOverQuit:
				return true
			case gameOverMenu:
				return false
			}
			continue
		}

	drain:
		for {
			select {
			case cmd, ok := <-a.cmds:
				if !ok {
					return true
				}
				switch cmd.Kind {
				case input.KindQuit:
					return true
				case input.KindMenuConfirm:
					return false
				case input.KindPause:
					g.TogglePause()
				case input.KindToggleMute:
					g.ToggleMute()
				case input.KindFocusLost:
					if a.cfg.Settings.PauseOnFocusLoss && !g.Paused() {
						g.TogglePause()
					}
				case input.KindCopyReport:
					a.copyReport(g)
				case input.KindDirection:
					queue.Push(cmd.Dir, g.Snake.Direction)
				case input.KindResize:
					a.termWidth, a.termHeight = cmd.Width, cmd.Height
					lay, check = layout.Compute(a.termWidth, a.termHeight, BoardWidth, BoardHeight, lang)
					if check == nil {
						a.renderer.DrawStaticFrame(g, lay, hud)
						lastTick = time.Now()
					}
				}
			default:
				break drain
			}
		}

		if check != nil {
			a.renderer.DrawSizeWarning(*check, lang)
			time.Sleep(sizeRetrySleep)
			continue
		}

		pending := g.Snake.Direction
		if d, ok := queue.Peek(); ok {
			pending = d
		}
		interval := layout.TickInterval(g, pending)
		if !g.Paused() && time.Since(lastTick) >= interval {
			if d, ok := queue.Pop(); ok {
				g.Snake.ChangeDirection(d)
			}
			g.Tick()
			lastTick = time.Now()
		}

		a.renderer.DrawGame(g, lay, hud)
		time.Sleep(frameSleep)
	}
}

type gameOverAction int

const (
	gameOverWait gameOverAction = iota
	gameOverMenu
	gameOverQuit
)

// waitAtGameOver shows the final panel and polls for the next command with a
// timeout so resize events still repaint.
func (a *App) waitAtGameOver(g *game.Game, lay *layout.Layout, check **layout.SizeCheck, hud ui.HUDState) gameOverAction {
	lang := hud.Lang
	if *check != nil {
		a.renderer.DrawSizeWarning(**check, lang)
	} else {
		a.renderer.DrawGame(g, *lay, hud)
	}

	select {
	case cmd, ok := <-a.cmds:
		if !ok {
			return gameOverQuit
		}
		switch cmd.Kind {
		case input.KindQuit:
			return gameOverQuit
		case input.KindMenuConfirm:
			return gameOverMenu
		case input.KindCopyReport:
			a.copyReport(g)
		case input.KindResize:
			a.termWidth, a.termHeight = cmd.Width, cmd.Height
			newLay, newCheck := layout.Compute(a.termWidth, a.termHeight, BoardWidth, BoardHeight, lang)
			*lay, *check = newLay, newCheck
			if newCheck == nil {
				a.renderer.DrawStaticFrame(g, newLay, hud)
			}
		}
	case <-time.After(gameOverPollTimeout):
	}
	return gameOverWait
}

// copyReport puts a plain-text session snapshot on the system clipboard.
func (a *App) copyReport(g *game.Game) {
	report := game.FormatSessionReport(g, a.sessionID)
	if err := clipboard.WriteAll(report); err != nil {
		a.log.WithError(err).Warn("clipboard copy failed")
		return
	}
	a.log.Info("session report copied to clipboard")
}
