package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"snake-pit/ai"
	"snake-pit/config"
	"snake-pit/game"
	"snake-pit/session"
	"snake-pit/terminal"
	"snake-pit/ui"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

func main() {
	env, err := config.Environ(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Parse(os.Args[1:], env)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stdout)
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		config.Usage(os.Stderr)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "snake-pit:", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logFile, err := config.SetupLogging(cfg.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	runID := uuid.New().String()
	logger := log.New(log.Writer(), "["+runID[:8]+"] ", log.Flags())
	logger.Printf("run %s: %+v", runID, cfg)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	var agent *ai.QLearning
	if cfg.Autopilot {
		if cfg.Train > 0 {
			// Before the frontend takes over the screen.
			fmt.Printf("training autopilot for %d episodes...\n", cfg.Train)
		}
		trained, summary, err := ai.Train(ai.TrainConfig{
			Episodes:    cfg.Train,
			Height:      cfg.Height,
			Width:       cfg.Width,
			SnakeLength: cfg.Length,
		}, rng)
		if err != nil {
			return err
		}
		logger.Printf("training: %v", summary)
		agent = trained
	}

	engine, err := game.NewEngine(cfg.Height, cfg.Width,
		game.WithSnakeLength(cfg.Length),
		game.WithRand(rng),
		game.WithLogger(logger))
	if err != nil {
		return err
	}

	frontend, err := openFrontend(cfg.Frontend)
	if err != nil {
		return err
	}
	// Also runs on panic, restoring the terminal before the trace prints.
	defer frontend.Close()

	opts := []session.Option{session.WithLogger(logger)}
	if cfg.Autopilot {
		opts = append(opts, session.WithPilot(ai.NewPilot(engine, agent)))
	}

	outcome := session.New(frontend, engine, cfg.Tick, opts...).Run()
	logger.Printf("run %s: %v after %d steps", runID, outcome, engine.Steps())
	return nil
}

func openFrontend(name string) (session.Frontend, error) {
	switch name {
	case config.FrontendWindow:
		return ui.NewWindow("Snake Pit"), nil
	case config.FrontendTerminal:
		f, err := terminal.New()
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: unknown frontend %q", config.ErrInvalidConfig, name)
}
