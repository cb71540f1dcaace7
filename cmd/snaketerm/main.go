package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"snaketerm/internal/app"
	"snaketerm/internal/storage"
)

func main() {
	smokeCheck := flag.Bool("smoke-check", false, "verify config persistence and exit")
	flag.Parse()

	cfgPath, err := storage.DefaultPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "snaketerm:", err)
		os.Exit(1)
	}

	if *smokeCheck {
		if err := runSmokeCheck(cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, "snaketerm smoke-check failed:", err)
			os.Exit(1)
		}
		fmt.Println("snaketerm smoke-check ok:", cfgPath)
		return
	}

	logger := newLogger()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "snaketerm: open terminal:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "snaketerm: init terminal:", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()

	app.New(screen, logger, cfgPath).Run()
}

// runSmokeCheck exercises a config load/save round-trip without touching the
// terminal, so packaging scripts can verify the install.
func runSmokeCheck(cfgPath string) error {
	cfg := storage.Load(cfgPath)
	if err := storage.Save(cfgPath, cfg); err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); err != nil {
		return err
	}
	return nil
}

// newLogger writes to ~/.snaketerm.log; the terminal belongs to tcell. If
// the file cannot be opened the log is discarded rather than corrupting the
// display.
func newLogger() *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetOutput(io.Discard)
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".snaketerm.log")
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil { // #nosec G304 -- our own log file
			logger.SetOutput(f)
		}
	}
	return logger
}
