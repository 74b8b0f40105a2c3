// Package terminal draws a game in a terminal and reads the keyboard with tcell.
package terminal

import (
	"fmt"

	"snake-pit/game"
	"snake-pit/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	wallRune = '#'
	bodyRune = 'o'
	headRune = '@'
	foodRune = '*'
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Draw paints the wall ring, the food and the snake with the pit's origin
// at the canvas origin. Cells outside the canvas are skipped.
func Draw(c Canvas, snap game.Snapshot) {
	w, h := c.Size()
	put := func(p types.Point, r rune, style tcell.Style) {
		if p.X < uint(w) && p.Y < uint(h) {
			c.SetContent(int(p.X), int(p.Y), r, nil, style)
		}
	}

	for _, p := range snap.Pit.Perimeter() {
		put(p, wallRune, wallStyle)
	}
	if snap.HasFood {
		put(snap.Food, foodRune, foodStyle)
	}
	for i, p := range snap.Body {
		if i == len(snap.Body)-1 {
			put(p, headRune, headStyle)
			continue
		}
		put(p, bodyRune, bodyStyle)
	}
}

// Status is the line printed under the pit.
func Status(snap game.Snapshot) string {
	return fmt.Sprintf("length %d  steps %d  heading %v", len(snap.Body), snap.Steps, snap.Direction)
}

// GameOverText is the message printed once the run finished.
func GameOverText(snap game.Snapshot) string {
	return fmt.Sprintf("GAME OVER: %v after %d steps, press any key", snap.Collision, snap.Steps)
}

// DrawText writes s from (x, y) rightwards, clipped to the canvas.
func DrawText(c Canvas, x, y int, s string, style tcell.Style) {
	w, h := c.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			c.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
