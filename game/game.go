package game

import (
	"errors"
	"fmt"
	"io"
	"log"

	"snake-pit/game/entity"
	"snake-pit/game/manager"
	"snake-pit/game/types"

	"golang.org/x/exp/rand"
)

const DefaultSnakeLength = 3

// Origin is where the snake's tail starts.
var Origin = types.Point{X: 2, Y: 2}

var (
	ErrInvalidLength = errors.New("snake length must be at least 1")
	ErrNoFreeCell    = errors.New("no free cell for food")
)

// State of a run. Finished is terminal.
type State int

const (
	Running State = iota
	Finished
)

func (s State) String() string {
	if s == Finished {
		return "finished"
	}
	return "running"
}

type config struct {
	snakeLength uint
	rng         *rand.Rand
	logger      *log.Logger
}

type Option func(*config)

// WithSnakeLength sets the initial snake length (default 3).
func WithSnakeLength(n uint) Option {
	return func(c *config) { c.snakeLength = n }
}

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithSeed is shorthand for WithRand over a fresh PCG source.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Engine runs one game: one snake in one pit chasing one piece of food.
// It is not safe for concurrent use; the caller owns it and ticks it.
type Engine struct {
	pit          types.Pit
	snake        *entity.Snake
	food         types.Point
	hasFood      bool
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	state        State
	collision    manager.CollisionType
	steps        int
	eaten        int
	logger       *log.Logger
}

// NewEngine builds a pit of the given size with the snake at Origin and
// the first food placed. It fails with ErrNoFreeCell when the snake
// leaves no interior cell free.
func NewEngine(pitHeight, pitWidth uint, opts ...Option) (*Engine, error) {
	cfg := config{snakeLength: DefaultSnakeLength}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.snakeLength == 0 {
		return nil, ErrInvalidLength
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}

	pit := types.NewPit(pitHeight, pitWidth)
	e := &Engine{
		pit:          pit,
		snake:        entity.NewSnake(cfg.snakeLength, Origin),
		collisionMgr: manager.NewCollisionManager(pit),
		foodMgr:      manager.NewFoodManager(pit, cfg.rng),
		state:        Running,
		logger:       cfg.logger,
	}

	food, ok := e.foodMgr.Place(e.snake)
	if !ok {
		return nil, fmt.Errorf("pit %dx%d with snake length %d: %w", pitHeight, pitWidth, cfg.snakeLength, ErrNoFreeCell)
	}
	e.food = food
	e.hasFood = true

	e.logger.Printf("engine: pit %dx%d, snake %v heading %v, food at %v",
		pitHeight, pitWidth, e.snake.Body(), e.snake.Direction(), e.food)
	return e, nil
}

// ChangeDirection sets the heading for the next tick. Invalid directions
// are ignored.
func (e *Engine) ChangeDirection(d types.Direction) {
	if !d.Valid() {
		return
	}
	e.snake.ChangeDirection(d)
}

// Tick advances the game one step: move, check walls and self, then food.
// Once Finished, Tick does nothing and keeps returning Finished.
func (e *Engine) Tick() State {
	if e.state == Finished {
		return Finished
	}

	e.snake.MoveToNextPosition()
	e.steps++

	if c := e.collisionMgr.Check(e.snake); c != manager.NoCollision {
		e.state = Finished
		e.collision = c
		e.logger.Printf("engine: %v at %v after %d steps", c, e.snake.Head(), e.steps)
		return Finished
	}

	if e.hasFood && e.collisionMgr.IsFoodCollision(e.snake, e.food) {
		e.snake.MakeLonger()
		e.eaten++
		e.hasFood = false
	}

	if !e.hasFood {
		e.replaceFood()
	}

	return Running
}

func (e *Engine) replaceFood() {
	food, ok := e.foodMgr.Place(e.snake)
	if !ok {
		e.logger.Printf("engine: no free cell for food at step %d", e.steps)
		return
	}
	e.food = food
	e.hasFood = true
	e.logger.Printf("engine: food at %v", food)
}

func (e *Engine) State() State {
	return e.state
}

// Collision reports what ended the run, or NoCollision while running.
func (e *Engine) Collision() manager.CollisionType {
	return e.collision
}

// Body returns the snake's segments, tail first and head last.
func (e *Engine) Body() []types.Point {
	return e.snake.Body()
}

func (e *Engine) Head() types.Point {
	return e.snake.Head()
}

func (e *Engine) Direction() types.Direction {
	return e.snake.Direction()
}

// Food returns the last placed food. After the snake eats with no free
// cell left it stays at the eaten position and HasFood reports false.
func (e *Engine) Food() types.Point {
	return e.food
}

func (e *Engine) HasFood() bool {
	return e.hasFood
}

func (e *Engine) Pit() types.Pit {
	return e.pit
}

// Steps is the number of ticks that moved the snake.
func (e *Engine) Steps() int {
	return e.steps
}

// Eaten is the number of food items consumed.
func (e *Engine) Eaten() int {
	return e.eaten
}

// IsDanger reports whether moving the head to p on the next tick would
// finish the run.
func (e *Engine) IsDanger(p types.Point) bool {
	return e.collisionMgr.IsDanger(e.snake, p)
}

// Snapshot is a copy of everything a frontend draws.
type Snapshot struct {
	Pit       types.Pit
	Body      []types.Point
	Direction types.Direction
	Food      types.Point
	HasFood   bool
	State     State
	Collision manager.CollisionType
	Steps     int
	Eaten     int
}

func (s Snapshot) Head() types.Point {
	return s.Body[len(s.Body)-1]
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Pit:       e.pit,
		Body:      e.snake.Body(),
		Direction: e.snake.Direction(),
		Food:      e.food,
		HasFood:   e.hasFood,
		State:     e.state,
		Collision: e.collision,
		Steps:     e.steps,
		Eaten:     e.eaten,
	}
}
