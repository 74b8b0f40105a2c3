package ui

import (
	"fmt"

	"snake-pit/game"
	"snake-pit/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 40 // Space under the grid for the status line
)

var snakeColor = rl.Color{R: 60, G: 180, B: 75, A: 255}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// layout fits the wall ring, which spans Width+1 by Height+1 cells, into
// the window above the status line.
func (r *Renderer) layout(pit types.Pit) {
	cols := int32(pit.Width) + 1
	rows := int32(pit.Height) + 1

	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2) - statusHeight

	r.cellSize = min(availableWidth/cols, availableHeight/rows)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.totalGridWidth = r.cellSize * cols
	r.totalGridHeight = r.cellSize * rows
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = borderPadding
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

// Draw renders one frame. A non-empty message is shown centred over the grid.
func (r *Renderer) Draw(snap game.Snapshot, message string) {
	r.UpdateDimensions()
	r.layout(snap.Pit)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := int32(r.screenHeight / 45) // Dynamic font size
	if fontSize < 10 {
		fontSize = 10
	}

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	// Draw walls
	for _, p := range snap.Pit.Perimeter() {
		x, y := r.cell(p)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Gray)
	}

	// Draw food
	if snap.HasFood {
		x, y := r.cell(snap.Food)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Red)
	}

	// Draw snake body
	for j, p := range snap.Body {
		color := snakeColor
		if j == 0 { // Tail
			color = rl.White
		} else if j == len(snap.Body)-1 { // Head
			color = rl.Color{
				R: uint8(min(float32(snakeColor.R)*1.3, 255)),
				G: uint8(min(float32(snakeColor.G)*1.3, 255)),
				B: uint8(min(float32(snakeColor.B)*1.3, 255)),
				A: 255,
			}
		}
		x, y := r.cell(p)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	}
	if len(snap.Body) > 0 {
		r.drawHeading(snap.Head(), snap.Direction)
	}

	// Status line
	status := fmt.Sprintf("Length: %d   Steps: %d   Heading: %v", len(snap.Body), snap.Steps, snap.Direction)
	rl.DrawText(status, r.offsetX, r.offsetY+r.totalGridHeight+borderPadding, fontSize, rl.White)

	if message != "" {
		textWidth := rl.MeasureText(message, fontSize)
		rl.DrawText(message,
			r.offsetX+(r.totalGridWidth-textWidth)/2,
			r.offsetY+r.totalGridHeight/2,
			fontSize, rl.Yellow)
	}

	rl.EndDrawing()
}

// drawHeading draws a triangle on the head pointing where the snake goes.
func (r *Renderer) drawHeading(head types.Point, direction types.Direction) {
	headX, headY := r.cell(head)
	halfCell := r.cellSize / 2

	var a, b, c rl.Vector2
	switch direction {
	case types.Right:
		a = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)}
		b = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)}
		c = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)}
	case types.Left:
		a = rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)}
		b = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)}
		c = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)}
	case types.Down:
		a = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)}
		b = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)}
		c = rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)}
	default: // Up
		a = rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)}
		b = rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)}
		c = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)}
	}
	// raylib expects counter-clockwise vertex order
	rl.DrawTriangle(a, b, c, rl.Yellow)
}
