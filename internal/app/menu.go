package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"snaketerm/internal/game"
	"snaketerm/internal/i18n"
	"snaketerm/internal/input"
	"snaketerm/internal/layout"
	"snaketerm/internal/storage"
	"snaketerm/internal/ui"
)

type menuScreen int

const (
	screenMain menuScreen = iota
	screenDifficulty
	screenHighScores
	screenSettings
	screenLanguage
	screenResetConfirm
)

type menuResult struct {
	play bool
	quit bool
}

// runMenu drives the menu screens until the player starts a game or quits.
// Receives block; the menu has nothing to do between commands.
func (a *App) runMenu() menuResult {
	screen := screenMain
	selected := map[menuScreen]int{
		screenResetConfirm: 1, // default No
	}

	for {
		lang := a.cfg.Settings.Language
		frame := a.menuFrame(screen, selected[screen], lang)
		a.renderer.DrawMenu(frame)

		cmd, ok := <-a.cmds
		if !ok {
			return menuResult{quit: true}
		}
		switch cmd.Kind {
		case input.KindQuit:
			return menuResult{quit: true}
		case input.KindResize:
			a.termWidth, a.termHeight = cmd.Width, cmd.Height
		case input.KindDirection:
			n := len(frame.Options)
			switch cmd.Dir {
			case game.Up:
				selected[screen] = (selected[screen] + n - 1) % n
			case game.Down:
				selected[screen] = (selected[screen] + 1) % n
			}
		case input.KindMenuSelect:
			if cmd.Index < len(frame.Options) {
				selected[screen] = cmd.Index
			}
		case input.KindMenuConfirm:
			next, res := a.activateMenuItem(screen, selected[screen])
			if res != nil {
				return *res
			}
			screen = next
		}
	}
}

// activateMenuItem applies the confirmed option and returns the next screen,
// or a terminal result when the menu is done.
func (a *App) activateMenuItem(screen menuScreen, sel int) (menuScreen, *menuResult) {
	switch screen {
	case screenMain:
		switch sel {
		case 0:
			if a.waitForPlayableSize() {
				return screenMain, &menuResult{play: true}
			}
			return screenMain, &menuResult{quit: true}
		case 1:
			return screenDifficulty, nil
		case 2:
			return screenHighScores, nil
		case 3:
			return screenSettings, nil
		default:
			return screenMain, &menuResult{quit: true}
		}
	case screenDifficulty:
		if sel < game.DifficultyCount {
			a.cfg.Settings.DefaultDifficulty = game.Difficulties[sel]
			a.persistConfig()
		}
		return screenMain, nil
	case screenHighScores:
		return screenMain, nil
	case screenSettings:
		switch sel {
		case 0:
			return screenLanguage, nil
		case 1:
			a.cfg.Settings.PauseOnFocusLoss = !a.cfg.Settings.PauseOnFocusLoss
			a.persistConfig()
			return screenSettings, nil
		case 2:
			a.cfg.Settings.SoundOn = !a.cfg.Settings.SoundOn
			a.persistConfig()
			return screenSettings, nil
		case 3:
			return screenResetConfirm, nil
		default:
			return screenMain, nil
		}
	case screenLanguage:
		if sel < len(i18n.All) {
			a.cfg.Settings.Language = i18n.All[sel]
			a.persistConfig()
		}
		return screenSettings, nil
	case screenResetConfirm:
		if sel == 0 {
			a.cfg.HighScores = storage.HighScores{}
			a.persistConfig()
			a.log.Info("high scores reset")
		}
		return screenSettings, nil
	}
	return screenMain, nil
}

func (a *App) menuFrame(screen menuScreen, selected int, lang i18n.Language) ui.MenuFrame {
	frame := ui.MenuFrame{
		Selected:   selected,
		Lang:       lang,
		TermWidth:  a.termWidth,
		TermHeight: a.termHeight,
		Hints: []string{
			i18n.MenuNavigationHint(lang),
			i18n.MenuConfirmHint(lang),
		},
	}

	switch screen {
	case screenMain:
		frame.Title = i18n.MenuTitle(lang)
		frame.Options = []string{
			i18n.MenuPlay(lang),
			fmt.Sprintf("%s: %s", i18n.MenuDifficulty(lang),
				i18n.DifficultyLabel(lang, a.cfg.Settings.DefaultDifficulty)),
			i18n.MenuHighScores(lang),
			i18n.MenuSettings(lang),
			i18n.MenuQuit(lang),
		}
	case screenDifficulty:
		frame.Title = i18n.DifficultyMenuTitle(lang)
		for _, d := range game.Difficulties {
			frame.Options = append(frame.Options, i18n.DifficultyLabel(lang, d))
		}
		frame.Options = append(frame.Options, i18n.MenuBack(lang))
	case screenHighScores:
		frame.Title = i18n.HighScoresMenuTitle(lang)
		frame.Options = append(highScoresOptions(a.cfg.HighScores, lang), i18n.MenuBack(lang))
	case screenSettings:
		frame.Title = i18n.MenuSettings(lang)
		frame.Options = []string{
			fmt.Sprintf("%s: %s", i18n.LanguageLabel(lang), i18n.LanguageName(lang)),
			fmt.Sprintf("%s: %s", i18n.SettingsPauseOnFocusLossLabel(lang),
				onOff(a.cfg.Settings.PauseOnFocusLoss, lang)),
			fmt.Sprintf("%s: %s", i18n.SettingsSoundLabel(lang),
				onOff(a.cfg.Settings.SoundOn, lang)),
			i18n.SettingsResetHighScoresLabel(lang),
			i18n.MenuBack(lang),
		}
	case screenLanguage:
		frame.Title = i18n.LanguagePopupTitle(lang)
		for _, l := range i18n.All {
			frame.Options = append(frame.Options, i18n.LanguageName(l))
		}
	case screenResetConfirm:
		frame.Title = i18n.ResetHighScoresTitle(lang)
		frame.Options = []string{i18n.ConfirmYes(lang), i18n.ConfirmNo(lang)}
	}
	return frame
}

// highScoresOptions renders one aligned row per tier.
func highScoresOptions(scores storage.HighScores, lang i18n.Language) []string {
	labelWidth := 0
	for _, d := range game.Difficulties {
		if w := runewidth.StringWidth(i18n.DifficultyLabel(lang, d)); w > labelWidth {
			labelWidth = w
		}
	}
	rows := make([]string, 0, game.DifficultyCount)
	for _, d := range game.Difficulties {
		label := i18n.DifficultyLabel(lang, d)
		pad := strings.Repeat(" ", labelWidth-runewidth.StringWidth(label)+2)
		rows = append(rows, fmt.Sprintf("%s%s%5d", label, pad, scores.Get(d)))
	}
	return rows
}

func onOff(v bool, lang i18n.Language) string {
	if v {
		return i18n.SettingOn(lang)
	}
	return i18n.SettingOff(lang)
}

// waitForPlayableSize blocks until the terminal fits the board or the player
// quits. Returns false on quit.
func (a *App) waitForPlayableSize() bool {
	for {
		_, check := layout.Compute(a.termWidth, a.termHeight, BoardWidth, BoardHeight, a.cfg.Settings.Language)
		if check == nil {
			return true
		}
		a.renderer.DrawSizeWarning(*check, a.cfg.Settings.Language)
		cmd, ok := <-a.cmds
		if !ok {
			return false
		}
		switch cmd.Kind {
		case input.KindQuit:
			return false
		case input.KindResize:
			a.termWidth, a.termHeight = cmd.Width, cmd.Height
		}
	}
}
