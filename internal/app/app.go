// Package app owns the interactive session: menu state machine, game loop,
// and config persistence. All game state lives on the goroutine running Run;
// the only other goroutine is the input reader feeding the command channel.
package app

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"snaketerm/internal/input"
	"snaketerm/internal/storage"
	"snaketerm/internal/ui"
)

const (
	BoardWidth  = 40
	BoardHeight = 20

	frameSleep          = 10 * time.Millisecond
	sizeRetrySleep      = 25 * time.Millisecond
	gameOverPollTimeout = 100 * time.Millisecond
)

// App is the interactive session.
type App struct {
	screen   tcell.Screen
	renderer *ui.Renderer
	log      *log.Entry
	cmds     <-chan input.Command

	cfgPath    string
	cfg        storage.Config
	saveWarned atomic.Bool

	termWidth  int
	termHeight int
	sessionID  string
}

// New builds the session around an initialized screen. cfgPath may point at
// a missing file; defaults apply.
func New(screen tcell.Screen, logger *log.Logger, cfgPath string) *App {
	sessionID := uuid.NewString()
	w, h := screen.Size()
	a := &App{
		screen:     screen,
		renderer:   ui.NewRenderer(screen),
		log:        logger.WithField("session", sessionID),
		cfgPath:    cfgPath,
		cfg:        storage.Load(cfgPath),
		termWidth:  w,
		termHeight: h,
		sessionID:  sessionID,
	}
	a.log.WithFields(log.Fields{
		"config":   cfgPath,
		"language": a.cfg.Settings.Language.String(),
	}).Info("session start")
	return a
}

// Run drives the menu/game alternation until the player quits or the input
// channel closes.
func (a *App) Run() {
	a.cmds = input.Listen(a.screen)
	for {
		res := a.runMenu()
		if res.quit {
			break
		}
		if a.runGame(a.cfg.Settings.DefaultDifficulty) {
			break
		}
	}
	a.log.Info("session end")
}

// persistConfig saves the config, logging at most one warning per process on
// failure so an unwritable home directory does not spam the log.
func (a *App) persistConfig() {
	if err := storage.Save(a.cfgPath, a.cfg); err != nil {
		if !a.saveWarned.Swap(true) {
			a.log.WithError(err).Warn("config save failed; further failures suppressed")
		}
	}
}
