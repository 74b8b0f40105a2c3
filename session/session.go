// Package session runs one game against a frontend at a fixed tick rate.
package session

import (
	"log"
	"time"

	"snake-pit/ai"
	"snake-pit/game"
)

// Frontend is what the loop needs from a terminal or window.
type Frontend interface {
	// Poll blocks for about budget and returns the input gathered meanwhile.
	Poll(budget time.Duration) game.Input
	Render(snap game.Snapshot)
	GameOver(snap game.Snapshot)
	WaitKey()
	Close()
}

type Outcome int

const (
	Quit Outcome = iota
	Over
)

func (o Outcome) String() string {
	if o == Over {
		return "over"
	}
	return "quit"
}

type Session struct {
	frontend Frontend
	engine   *game.Engine
	pilot    *ai.Pilot
	tick     time.Duration
	logger   *log.Logger
}

type Option func(*Session)

// WithPilot hands steering to the autopilot. Key turns are then ignored
// but the quit key still works.
func WithPilot(p *ai.Pilot) Option {
	return func(s *Session) { s.pilot = p }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func New(f Frontend, e *game.Engine, tick time.Duration, opts ...Option) *Session {
	s := &Session{
		frontend: f,
		engine:   e,
		tick:     tick,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays until the game finishes or the player quits. A finished game
// shows its last frame and waits for a key before returning Over.
func (s *Session) Run() Outcome {
	s.frontend.Render(s.engine.Snapshot())

	for {
		in := s.frontend.Poll(s.tick)
		if in.Quit {
			s.logger.Printf("session: quit after %d steps", s.engine.Steps())
			return Quit
		}

		var state game.State
		if s.pilot != nil {
			state = s.pilot.Step()
		} else {
			in.Apply(s.engine)
			state = s.engine.Tick()
		}

		snap := s.engine.Snapshot()
		if state == game.Finished {
			s.logger.Printf("session: %v, length %d, ate %d", snap.Collision, len(snap.Body), snap.Eaten)
			s.frontend.GameOver(snap)
			s.frontend.WaitKey()
			return Over
		}
		s.frontend.Render(snap)
	}
}
