package entity

import "snake-pit/game/types"

type Snake struct {
	body          *Body
	direction     types.Direction
	growthPending bool
}

// NewSnake lays out length segments from origin towards increasing x,
// heading Right. length must be at least 1.
func NewSnake(length uint, origin types.Point) *Snake {
	if length == 0 {
		panic("entity: snake length must be at least 1")
	}

	body := NewBody(int(length) * 2)
	for i := uint(0); i < length; i++ {
		body.PushHead(types.Point{X: origin.X + i, Y: origin.Y})
	}

	return &Snake{
		body:      body,
		direction: types.Right,
	}
}

// MoveToNextPosition pushes a new head one cell ahead, then drops the tail
// unless a growth was pending.
func (s *Snake) MoveToNextPosition() {
	s.body.PushHead(s.body.Head().Step(s.direction))
	if s.growthPending {
		s.growthPending = false
		return
	}
	s.body.PopTail()
}

// ChangeDirection sets the heading used by the next move. Reversing into
// the body is allowed and ends in a self collision.
func (s *Snake) ChangeDirection(d types.Direction) {
	s.direction = d
}

// MakeLonger keeps the tail in place on the next move.
func (s *Snake) MakeLonger() {
	s.growthPending = true
}

func (s *Snake) IsEatingItself() bool {
	head := s.body.Head()
	for i := 0; i < s.body.Len()-1; i++ {
		if s.body.At(i) == head {
			return true
		}
	}
	return false
}

func (s *Snake) IsEatingSnack(p types.Point) bool {
	return s.body.Head() == p
}

func (s *Snake) CollidesWithPoint(p types.Point) bool {
	return s.body.Contains(p)
}

func (s *Snake) CollidesWithBounds(pit types.Pit) bool {
	return pit.IsWall(s.body.Head())
}

func (s *Snake) Head() types.Point {
	return s.body.Head()
}

func (s *Snake) Tail() types.Point {
	return s.body.Tail()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a copy of the segments, tail first and head last.
func (s *Snake) Body() []types.Point {
	return s.body.Points()
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) GrowthPending() bool {
	return s.growthPending
}
