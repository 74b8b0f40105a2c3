package ai

import (
	"math"

	"snake-pit/game/types"

	"golang.org/x/exp/rand"
)

// State is what the pilot sees of the pit around the head.
type State struct {
	RelativeFoodDir [2]int  // sign of food - head on each axis
	DangerDirs      [4]bool // indexed by types.Direction
	Heading         types.Direction
}

type QTable map[State][4]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	MinEpsilon   float64
	EpsilonDecay float64
	TotalReward  float64
	GamesPlayed  int
	rng          *rand.Rand
}

// NewQLearning returns an agent with an empty table. rng drives
// exploration; nil disables it.
func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		MinEpsilon:   0.01,
		EpsilonDecay: 0.995,
		rng:          rng,
	}
}

// Act picks a heading for state s, epsilon-greedy. It never proposes
// reversing into the neck.
func (q *QLearning) Act(s State) types.Direction {
	if q.rng != nil && q.rng.Float64() < q.Epsilon {
		choices := q.legal(s)
		return choices[q.rng.Intn(len(choices))]
	}
	return q.Best(s)
}

// Best returns the legal heading with the highest Q-value. Ties go to
// straight ahead, then left, then right, preferring headings without danger.
func (q *QLearning) Best(s State) types.Direction {
	values := q.QTable[s]

	best := s.Heading
	bestValue := math.Inf(-1)
	for _, d := range q.legal(s) {
		v := values[d]
		if s.DangerDirs[d] {
			v -= 1e-9
		}
		if v > bestValue {
			bestValue = v
			best = d
		}
	}
	return best
}

// Learn applies one Q-learning update for moving from s to next with
// action a and returns the new Q-value.
func (q *QLearning) Learn(s State, a types.Direction, reward float64, next State, done bool) float64 {
	values := q.QTable[s]

	var maxNext float64
	if !done {
		maxNext = math.Inf(-1)
		for _, v := range q.QTable[next] {
			if v > maxNext {
				maxNext = v
			}
		}
	}

	// Q(s,a) = Q(s,a) + α [r + γ * max_a' Q(s',a') - Q(s,a)]
	values[a] += q.LearningRate * (reward + q.Discount*maxNext - values[a])
	q.QTable[s] = values
	q.TotalReward += reward
	return values[a]
}

// EndEpisode counts a finished game and decays exploration.
func (q *QLearning) EndEpisode() {
	q.GamesPlayed++
	if q.Epsilon > q.MinEpsilon {
		q.Epsilon *= q.EpsilonDecay
		if q.Epsilon < q.MinEpsilon {
			q.Epsilon = q.MinEpsilon
		}
	}
}

// legal lists the relative moves: straight, left turn, right turn.
func (q *QLearning) legal(s State) []types.Direction {
	return []types.Direction{s.Heading, s.Heading.TurnLeft(), s.Heading.TurnRight()}
}
