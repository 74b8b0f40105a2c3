package manager

import (
	"snake-pit/game/entity"
	"snake-pit/game/types"
)

// CollisionType records why a run ended
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall collision"
	case SelfCollision:
		return "self collision"
	default:
		return "no collision"
	}
}

type CollisionManager struct {
	pit types.Pit
}

func NewCollisionManager(pit types.Pit) *CollisionManager {
	return &CollisionManager{
		pit: pit,
	}
}

// Check classifies the snake's position after a move. The wall test runs
// before the self test, so a head on both reports WallCollision.
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionType {
	if snake.CollidesWithBounds(cm.pit) {
		return WallCollision
	}
	if snake.IsEatingItself() {
		return SelfCollision
	}
	return NoCollision
}

// IsFoodCollision checks if the snake's head is on the food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food types.Point) bool {
	return snake.IsEatingSnack(food)
}

// IsDanger reports whether a head moved to pos would end the run. The tail
// is excluded when it is about to move out of the way.
func (cm *CollisionManager) IsDanger(snake *entity.Snake, pos types.Point) bool {
	if cm.pit.IsWall(pos) {
		return true
	}

	body := snake.Body()
	start := 0
	if !snake.GrowthPending() {
		start = 1
	}
	for _, part := range body[start:] {
		if part == pos {
			return true
		}
	}
	return false
}
