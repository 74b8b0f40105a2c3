package ai

import (
	"fmt"
	"log"

	"snake-pit/game"

	"golang.org/x/exp/rand"
)

// Pilot steers an engine with a Q-learning agent, learning as it plays.
type Pilot struct {
	engine *game.Engine
	agent  *QLearning
}

func NewPilot(engine *game.Engine, agent *QLearning) *Pilot {
	return &Pilot{engine: engine, agent: agent}
}

// Step senses, turns, ticks the engine once and learns from the outcome.
func (p *Pilot) Step() game.State {
	if p.engine.State() == game.Finished {
		return game.Finished
	}

	state := Sense(p.engine)
	prev := p.engine.Snapshot()

	action := p.agent.Act(state)
	p.engine.ChangeDirection(action)
	result := p.engine.Tick()

	next := p.engine.Snapshot()
	done := result == game.Finished
	var nextState State
	if !done {
		nextState = Sense(p.engine)
	}
	p.agent.Learn(state, action, Reward(prev, next), nextState, done)
	if done {
		p.agent.EndEpisode()
	}
	return result
}

type TrainConfig struct {
	Episodes    int
	Height      uint
	Width       uint
	SnakeLength uint
	MaxSteps    int // per episode; 0 means Height*Width*4
}

// Summary of a training session. Outcomes are pass/fail only.
type Summary struct {
	Episodes   int
	LongestRun int // ticks survived by the best episode
	Timeouts   int // episodes cut at MaxSteps while still running
}

func (s Summary) String() string {
	return fmt.Sprintf("%d episodes, longest run %d ticks, %d timeouts", s.Episodes, s.LongestRun, s.Timeouts)
}

// Train plays cfg.Episodes headless games on fresh engines sharing rng and
// returns the trained agent.
func Train(cfg TrainConfig, rng *rand.Rand) (*QLearning, Summary, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = int(cfg.Height*cfg.Width) * 4
	}
	length := cfg.SnakeLength
	if length == 0 {
		length = game.DefaultSnakeLength
	}

	agent := NewQLearning(rng)
	var summary Summary

	for episode := 0; episode < cfg.Episodes; episode++ {
		engine, err := game.NewEngine(cfg.Height, cfg.Width, game.WithSnakeLength(length), game.WithRand(rng))
		if err != nil {
			return nil, summary, fmt.Errorf("training episode %d: %w", episode, err)
		}

		pilot := NewPilot(engine, agent)
		for engine.Steps() < maxSteps && pilot.Step() == game.Running {
		}
		if engine.State() == game.Running {
			summary.Timeouts++
			agent.EndEpisode()
		}

		summary.Episodes++
		if engine.Steps() > summary.LongestRun {
			summary.LongestRun = engine.Steps()
		}

		if (episode+1)%100 == 0 {
			log.Printf("training: %d/%d episodes, epsilon %.3f, longest run %d",
				episode+1, cfg.Episodes, agent.Epsilon, summary.LongestRun)
		}
	}

	return agent, summary, nil
}
