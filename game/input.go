package game

import "snake-pit/game/types"

// Input is what a frontend collected during one tick window. When several
// turns arrive in the same window only the latest one counts.
type Input struct {
	Direction types.Direction
	Turned    bool
	Quit      bool
}

// Turn records a heading, replacing any earlier one in the window.
func (in *Input) Turn(d types.Direction) {
	in.Direction = d
	in.Turned = true
}

// Apply forwards the collected turn, if any, to the engine.
func (in Input) Apply(e *Engine) {
	if in.Turned {
		e.ChangeDirection(in.Direction)
	}
}
