package input

import (
	"github.com/gdamore/tcell/v2"

	"snaketerm/internal/game"
)

// Listen starts the reader goroutine: it polls terminal events, translates
// them to Commands, and forwards them on the returned channel. The channel
// closes when the player quits or the screen is finalized (PollEvent returns
// nil after Fini), so receivers treat a closed channel as quit.
func Listen(screen tcell.Screen) <-chan Command {
	cmds := make(chan Command, 64)
	go func() {
		defer close(cmds)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			cmd, ok := translate(ev)
			if !ok {
				continue
			}
			cmds <- cmd
			if cmd.Kind == KindQuit {
				return
			}
		}
	}()
	return cmds
}

func translate(ev tcell.Event) (Command, bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Command{Kind: KindResize, Width: w, Height: h}, true
	case *tcell.EventFocus:
		if !e.Focused {
			return Command{Kind: KindFocusLost}, true
		}
		return Command{}, false
	case *tcell.EventKey:
		return translateKey(e)
	}
	return Command{}, false
}

func translateKey(e *tcell.EventKey) (Command, bool) {
	switch e.Key() {
	case tcell.KeyUp:
		return Command{Kind: KindDirection, Dir: game.Up}, true
	case tcell.KeyDown:
		return Command{Kind: KindDirection, Dir: game.Down}, true
	case tcell.KeyLeft:
		return Command{Kind: KindDirection, Dir: game.Left}, true
	case tcell.KeyRight:
		return Command{Kind: KindDirection, Dir: game.Right}, true
	case tcell.KeyEnter:
		return Command{Kind: KindMenuConfirm}, true
	case tcell.KeyRune:
		return translateRune(e.Rune())
	}
	return Command{}, false
}

func translateRune(r rune) (Command, bool) {
	switch r {
	case 'q', 'Q':
		return Command{Kind: KindQuit}, true
	case 'p', 'P':
		return Command{Kind: KindPause}, true
	case 'm', 'M':
		return Command{Kind: KindToggleMute}, true
	case 'c', 'C':
		return Command{Kind: KindCopyReport}, true
	case 'w', 'W':
		return Command{Kind: KindDirection, Dir: game.Up}, true
	case 's', 'S':
		return Command{Kind: KindDirection, Dir: game.Down}, true
	case 'a', 'A':
		return Command{Kind: KindDirection, Dir: game.Left}, true
	case 'd', 'D':
		return Command{Kind: KindDirection, Dir: game.Right}, true
	case ' ':
		return Command{Kind: KindMenuConfirm}, true
	case '1', '2', '3', '4', '5', '6':
		return Command{Kind: KindMenuSelect, Index: int(r - '1')}, true
	}
	return Command{}, false
}
