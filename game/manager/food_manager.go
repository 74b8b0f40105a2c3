package manager

import (
	"snake-pit/game/entity"
	"snake-pit/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	pit types.Pit
	rng *rand.Rand
}

// NewFoodManager builds a placer drawing from rng. A nil rng gets a
// time-independent source seeded with 1.
func NewFoodManager(pit types.Pit, rng *rand.Rand) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FoodManager{
		pit: pit,
		rng: rng,
	}
}

// FreeCells lists interior cells not covered by the snake, row-major.
func (fm *FoodManager) FreeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body() {
		occupied[p] = struct{}{}
	}

	free := make([]types.Point, 0, fm.pit.InteriorSize())
	for _, p := range fm.pit.Interior() {
		if _, ok := occupied[p]; !ok {
			free = append(free, p)
		}
	}
	return free
}

// Place draws a free cell uniformly at random. It returns false, and does
// not consume randomness, when no cell is free.
func (fm *FoodManager) Place(snake *entity.Snake) (types.Point, bool) {
	free := fm.FreeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
