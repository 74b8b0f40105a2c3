package terminal

import (
	"snake-pit/game/types"

	"github.com/gdamore/tcell/v2"
)

// KeyDirection maps arrow keys, hjkl and wasd to a heading.
func KeyDirection(key tcell.Key, ch rune) (types.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ch {
		case 'k', 'w':
			return types.Up, true
		case 'j', 's':
			return types.Down, true
		case 'h', 'a':
			return types.Left, true
		case 'l', 'd':
			return types.Right, true
		}
	}
	return 0, false
}

func IsQuit(key tcell.Key, ch rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC ||
		(key == tcell.KeyRune && (ch == 'q' || ch == 'Q'))
}
