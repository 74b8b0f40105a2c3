package types

import (
	"fmt"
	"math"
)

// Point is a cell on the grid. Coordinates never go negative.
type Point struct {
	X, Y uint
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighbouring cell in direction d. Both axes saturate
// instead of wrapping: stepping Up from y=0 stays at y=0.
func (p Point) Step(d Direction) Point {
	switch d {
	case Up:
		return Point{X: p.X, Y: saturatingSub(p.Y)}
	case Down:
		return Point{X: p.X, Y: saturatingAdd(p.Y)}
	case Left:
		return Point{X: saturatingSub(p.X), Y: p.Y}
	case Right:
		return Point{X: saturatingAdd(p.X), Y: p.Y}
	default:
		return p
	}
}

// Manhattan returns the grid distance between two points.
func (p Point) Manhattan(q Point) uint {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

func saturatingSub(v uint) uint {
	if v == 0 {
		return 0
	}
	return v - 1
}

func saturatingAdd(v uint) uint {
	if v == math.MaxUint {
		return v
	}
	return v + 1
}

func absDiff(a, b uint) uint {
	if a > b {
		return a - b
	}
	return b - a
}

// Direction is the heading of the snake
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) Valid() bool {
	return d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// TurnLeft returns the heading after a 90° counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the heading after a 90° clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}
