// Package ui draws a game in a raylib window.
package ui

import (
	"time"

	"snake-pit/game"
	"snake-pit/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

// Window owns the raylib window for the duration of a game.
type Window struct {
	renderer *Renderer
	last     game.Snapshot
	message  string
}

func NewWindow(title string) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, title)
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0) // Escape is handled as quit by Poll

	return &Window{renderer: NewRenderer()}
}

// keyDirection maps arrow keys and wasd to a heading.
func keyDirection(key int32) (types.Direction, bool) {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.Up, true
	case rl.KeyDown, rl.KeyS:
		return types.Down, true
	case rl.KeyLeft, rl.KeyA:
		return types.Left, true
	case rl.KeyRight, rl.KeyD:
		return types.Right, true
	}
	return 0, false
}

func isQuit(key int32) bool {
	return key == rl.KeyEscape || key == rl.KeyQ
}

// Poll keeps redrawing the last frame while the budget runs, collecting key
// presses. The latest direction key wins; quitting returns immediately.
func (w *Window) Poll(budget time.Duration) game.Input {
	var in game.Input
	deadline := time.Now().Add(budget)

	for time.Now().Before(deadline) {
		if rl.WindowShouldClose() {
			in.Quit = true
			return in
		}
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			if isQuit(key) {
				in.Quit = true
				return in
			}
			if d, ok := keyDirection(key); ok {
				in.Turn(d)
			}
		}
		w.renderer.Draw(w.last, w.message)
	}
	return in
}

// WaitKey redraws the last frame until a key is pressed or the window closes.
func (w *Window) WaitKey() {
	for !rl.WindowShouldClose() {
		if rl.GetKeyPressed() != 0 {
			return
		}
		w.renderer.Draw(w.last, w.message)
	}
}

func (w *Window) Render(snap game.Snapshot) {
	w.last = snap
	w.message = ""
	w.renderer.Draw(snap, "")
}

func (w *Window) GameOver(snap game.Snapshot) {
	w.last = snap
	w.message = "GAME OVER: " + snap.Collision.String() + ", press any key"
	w.renderer.Draw(snap, w.message)
}

func (w *Window) Close() {
	rl.CloseWindow()
}
