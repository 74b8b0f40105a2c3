package terminal

import (
	"errors"
	"os"
	"sync"
	"time"

	"snake-pit/game"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("stdin is not a terminal")

type keyPress struct {
	key tcell.Key
	ch  rune
}

// Frontend owns the terminal for the duration of a game.
type Frontend struct {
	screen    tcell.Screen
	keys      chan keyPress
	done      chan struct{}
	closeOnce sync.Once
}

func New() (*Frontend, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	f := newFrontend(screen)
	go f.pump()
	return f, nil
}

func newFrontend(screen tcell.Screen) *Frontend {
	return &Frontend{
		screen: screen,
		keys:   make(chan keyPress, 100),
		done:   make(chan struct{}),
	}
}

// pump forwards key events until the screen is finalized or the frontend
// is closed.
func (f *Frontend) pump() {
	defer close(f.keys)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case f.keys <- keyPress{key: ev.Key(), ch: ev.Rune()}:
			case <-f.done:
				return
			}
		case *tcell.EventResize:
			f.screen.Sync()
		}
	}
}

// Poll collects key presses for the whole budget. The latest direction key
// wins; a quit key returns immediately.
func (f *Frontend) Poll(budget time.Duration) game.Input {
	var in game.Input
	timer := time.NewTimer(budget)
	defer timer.Stop()

	for {
		select {
		case kp, ok := <-f.keys:
			if !ok || IsQuit(kp.key, kp.ch) {
				in.Quit = true
				return in
			}
			if d, ok := KeyDirection(kp.key, kp.ch); ok {
				in.Turn(d)
			}
		case <-timer.C:
			return in
		}
	}
}

// WaitKey blocks until any key is pressed.
func (f *Frontend) WaitKey() {
	<-f.keys
}

func (f *Frontend) Render(snap game.Snapshot) {
	f.screen.Clear()
	Draw(f.screen, snap)
	DrawText(f.screen, 0, int(snap.Pit.Height)+2, Status(snap), statusStyle)
	f.screen.Show()
}

func (f *Frontend) GameOver(snap game.Snapshot) {
	f.screen.Clear()
	Draw(f.screen, snap)
	DrawText(f.screen, 0, int(snap.Pit.Height)+2, Status(snap), statusStyle)
	DrawText(f.screen, 0, int(snap.Pit.Height)+3, GameOverText(snap), overStyle)
	f.screen.Show()
}

// Close stops the event pump and restores the terminal. It is safe to call
// more than once.
func (f *Frontend) Close() {
	f.closeOnce.Do(func() {
		close(f.done)
		f.screen.Fini()
	})
}
