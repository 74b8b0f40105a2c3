package ai

import (
	"snake-pit/game"
	"snake-pit/game/types"
)

// Sense reads the pilot's view of the engine.
func Sense(e *game.Engine) State {
	head := e.Head()
	food := e.Food()

	var s State
	s.Heading = e.Direction()
	if e.HasFood() {
		s.RelativeFoodDir = [2]int{compare(food.X, head.X), compare(food.Y, head.Y)}
	}
	for _, d := range types.Directions {
		s.DangerDirs[d] = e.IsDanger(head.Step(d))
	}
	return s
}

// Reward scores one tick from prev to next.
func Reward(prev, next game.Snapshot) float64 {
	switch {
	case next.State == game.Finished:
		return -1.0
	case next.Eaten > prev.Eaten:
		return 1.0
	}

	if !prev.HasFood {
		return 0
	}
	before := prev.Head().Manhattan(prev.Food)
	after := next.Head().Manhattan(prev.Food)
	switch {
	case after < before:
		return 0.1
	case after > before:
		return -0.1
	default:
		return 0
	}
}

func compare(a, b uint) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
