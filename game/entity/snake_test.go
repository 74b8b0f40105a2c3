package entity

import (
	"reflect"
	"testing"

	"snake-pit/game/types"
)

func pts(coords ...uint) []types.Point {
	out := make([]types.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, types.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func assertBody(t *testing.T, s *Snake, want []types.Point) {
	t.Helper()
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Body = %v, want %v", got, want)
	}
}

func assertAdjacent(t *testing.T, s *Snake) {
	t.Helper()
	body := s.Body()
	for i := 1; i < len(body); i++ {
		if body[i-1].Manhattan(body[i]) != 1 {
			t.Fatalf("Segments %v and %v are not adjacent in %v", body[i-1], body[i], body)
		}
	}
}

func TestCreatingSnakeWithLen3(t *testing.T) {
	s := NewSnake(3, types.Point{})
	assertBody(t, s, pts(0, 0, 1, 0, 2, 0))
	if s.Direction() != types.Right {
		t.Errorf("Expected heading right, got %v", s.Direction())
	}
	if s.GrowthPending() {
		t.Error("New snake must not have pending growth")
	}
}

func TestCreatingSnakeWithOffset(t *testing.T) {
	s := NewSnake(3, types.Point{X: 5, Y: 5})
	assertBody(t, s, pts(5, 5, 6, 5, 7, 5))
	if s.Head() != (types.Point{X: 7, Y: 5}) || s.Tail() != (types.Point{X: 5, Y: 5}) {
		t.Errorf("Unexpected head %v / tail %v", s.Head(), s.Tail())
	}
}

func TestNewSnakeZeroLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero length")
		}
	}()
	NewSnake(0, types.Point{})
}

func TestMovingAround(t *testing.T) {
	s := NewSnake(3, types.Point{})

	s.MoveToNextPosition()
	assertBody(t, s, pts(1, 0, 2, 0, 3, 0))

	steps := []struct {
		dir  types.Direction
		want []types.Point
	}{
		{types.Down, pts(2, 0, 3, 0, 3, 1)},
		{types.Left, pts(3, 0, 3, 1, 2, 1)},
		{types.Up, pts(3, 1, 2, 1, 2, 0)},
		{types.Right, pts(2, 1, 2, 0, 3, 0)},
	}

	for _, step := range steps {
		s.ChangeDirection(step.dir)
		s.MoveToNextPosition()
		assertBody(t, s, step.want)
		assertAdjacent(t, s)
		if s.IsEatingItself() {
			t.Fatalf("Unexpected self collision after moving %v", step.dir)
		}
	}
}

func TestChangeDirectionIsIdempotent(t *testing.T) {
	a := NewSnake(3, types.Point{X: 2, Y: 2})
	b := NewSnake(3, types.Point{X: 2, Y: 2})

	a.ChangeDirection(types.Down)
	b.ChangeDirection(types.Down)
	b.ChangeDirection(types.Down)
	a.MoveToNextPosition()
	b.MoveToNextPosition()

	if !reflect.DeepEqual(a.Body(), b.Body()) || a.Direction() != b.Direction() {
		t.Errorf("Repeated direction change diverged: %v vs %v", a.Body(), b.Body())
	}
}

func TestChangeDirectionTakesEffectOnNextMove(t *testing.T) {
	s := NewSnake(3, types.Point{X: 2, Y: 2})
	s.ChangeDirection(types.Down)
	if s.Head() != (types.Point{X: 4, Y: 2}) {
		t.Fatalf("Changing direction must not move the snake, head at %v", s.Head())
	}
	s.MoveToNextPosition()
	if s.Head() != (types.Point{X: 4, Y: 3}) {
		t.Errorf("Expected head at (4,3), got %v", s.Head())
	}
}

func TestMakeLonger(t *testing.T) {
	s := NewSnake(3, types.Point{X: 1, Y: 1})
	before := s.Body()

	s.MakeLonger()
	if !s.GrowthPending() {
		t.Fatal("Expected growth to be pending")
	}
	s.MoveToNextPosition()

	after := s.Body()
	if len(after) != len(before)+1 {
		t.Fatalf("Expected length %d, got %d", len(before)+1, len(after))
	}
	if !reflect.DeepEqual(after[:len(before)], before) {
		t.Errorf("Prior segments changed: %v -> %v", before, after)
	}
	if after[len(after)-1] != (types.Point{X: 4, Y: 1}) {
		t.Errorf("Expected new head (4,1), got %v", after[len(after)-1])
	}
	if s.GrowthPending() {
		t.Error("Growth flag must clear after one move")
	}

	s.MoveToNextPosition()
	if s.Len() != len(after) {
		t.Errorf("Second move should not grow, length %d", s.Len())
	}
}

func TestMakeLongerTwiceGrowsOnce(t *testing.T) {
	s := NewSnake(2, types.Point{X: 1, Y: 1})
	s.MakeLonger()
	s.MakeLonger()
	s.MoveToNextPosition()
	s.MoveToNextPosition()
	if s.Len() != 3 {
		t.Errorf("Expected a single pending growth, length %d", s.Len())
	}
}

func TestEatingItself(t *testing.T) {
	s := NewSnake(5, types.Point{})

	s.ChangeDirection(types.Down)
	s.MoveToNextPosition()
	if s.IsEatingItself() {
		t.Fatal("Self collision after first turn")
	}

	s.ChangeDirection(types.Left)
	s.MoveToNextPosition()
	if s.IsEatingItself() {
		t.Fatal("Self collision after second turn")
	}

	s.ChangeDirection(types.Up)
	s.MoveToNextPosition()
	if !s.IsEatingItself() {
		t.Errorf("Expected self collision, body %v", s.Body())
	}
}

func TestReversingIntoBody(t *testing.T) {
	s := NewSnake(3, types.Point{X: 2, Y: 2})
	s.ChangeDirection(types.Left)
	s.MoveToNextPosition()
	if !s.IsEatingItself() {
		t.Errorf("Reversal should collide with the neck, body %v", s.Body())
	}
}

func TestSingleSegmentNeverEatsItself(t *testing.T) {
	s := NewSnake(1, types.Point{X: 3, Y: 3})
	for _, d := range []types.Direction{types.Left, types.Right, types.Up, types.Down} {
		s.ChangeDirection(d)
		s.MoveToNextPosition()
		if s.IsEatingItself() || s.Len() != 1 {
			t.Fatalf("Single segment snake misbehaved: %v", s.Body())
		}
	}
}

func TestCollisionQueries(t *testing.T) {
	s := NewSnake(3, types.Point{X: 1, Y: 1})

	if !s.IsEatingSnack(types.Point{X: 3, Y: 1}) {
		t.Error("Expected head to be on snack")
	}
	if s.IsEatingSnack(types.Point{X: 1, Y: 1}) {
		t.Error("Tail is not the head")
	}
	for _, p := range s.Body() {
		if !s.CollidesWithPoint(p) {
			t.Errorf("Expected collision with own segment %v", p)
		}
	}
	if s.CollidesWithPoint(types.Point{X: 4, Y: 1}) {
		t.Error("Unexpected collision with free cell")
	}
}

func TestCollidesWithBounds(t *testing.T) {
	pit := types.NewPit(10, 10)

	tests := []struct {
		name   string
		origin types.Point
		dir    types.Direction
		moves  int
		want   bool
	}{
		{"interior", types.Point{X: 2, Y: 2}, types.Right, 1, false},
		{"last column before wall", types.Point{X: 5, Y: 2}, types.Right, 2, false},
		{"right wall at width", types.Point{X: 5, Y: 2}, types.Right, 3, true},
		{"top wall at zero", types.Point{X: 2, Y: 1}, types.Up, 1, true},
		{"starting position", types.Point{X: 1, Y: 3}, types.Down, 0, false},
		{"bottom wall at height", types.Point{X: 2, Y: 8}, types.Down, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(3, tt.origin)
			s.ChangeDirection(tt.dir)
			for i := 0; i < tt.moves; i++ {
				s.MoveToNextPosition()
			}
			if got := s.CollidesWithBounds(pit); got != tt.want {
				t.Errorf("CollidesWithBounds = %v, want %v (head %v)", got, tt.want, s.Head())
			}
		})
	}
}

func TestLeftWallSaturates(t *testing.T) {
	pit := types.NewPit(10, 10)
	s := NewSnake(1, types.Point{X: 1, Y: 4})
	s.ChangeDirection(types.Left)
	s.MoveToNextPosition()
	if s.Head() != (types.Point{X: 0, Y: 4}) || !s.CollidesWithBounds(pit) {
		t.Fatalf("Expected wall hit at (0,4), head %v", s.Head())
	}
	s.MoveToNextPosition()
	if s.Head() != (types.Point{X: 0, Y: 4}) {
		t.Errorf("Coordinate wrapped: head %v", s.Head())
	}
}

func TestBodyLengthInvariant(t *testing.T) {
	s := NewSnake(4, types.Point{X: 2, Y: 5})
	turns := []types.Direction{types.Down, types.Right, types.Right, types.Up, types.Right, types.Down}
	for i, d := range turns {
		s.ChangeDirection(d)
		before := s.Len()
		grow := i%2 == 0
		if grow {
			s.MakeLonger()
		}
		s.MoveToNextPosition()

		want := before
		if grow {
			want++
		}
		if s.Len() != want {
			t.Fatalf("Move %d: length %d, want %d", i, s.Len(), want)
		}
		assertAdjacent(t, s)
	}
}
