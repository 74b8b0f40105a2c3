// Package config turns command line flags and SNAKE_PIT_* environment
// variables into a validated Config.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces the variables that provide flag defaults, e.g.
// SNAKE_PIT_WIDTH=60 acts like -width 60 unless the flag is given.
const EnvPrefix = "SNAKE_PIT_"

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// MaxSide bounds the pit sides and the snake length. It is larger than any
// terminal or window either frontend draws.
const MaxSide = 1000

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Height    uint
	Width     uint
	Length    uint
	Tick      time.Duration
	Seed      uint64 // 0 picks a time based seed
	Frontend  string
	Autopilot bool
	Train     int // headless warm-up episodes for the autopilot
	Debug     bool
}

func Default() Config {
	return Config{
		Height:   20,
		Width:    40,
		Length:   3,
		Tick:     150 * time.Millisecond,
		Frontend: FrontendTerminal,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Height == 0 || c.Width == 0:
		return fmt.Errorf("%w: pit %dx%d has no cells", ErrInvalidConfig, c.Height, c.Width)
	case c.Height > MaxSide || c.Width > MaxSide:
		return fmt.Errorf("%w: pit %dx%d exceeds %d cells per side", ErrInvalidConfig, c.Height, c.Width, MaxSide)
	case c.Length == 0:
		return fmt.Errorf("%w: snake length must be positive", ErrInvalidConfig)
	case c.Length > MaxSide:
		return fmt.Errorf("%w: snake length %d exceeds %d", ErrInvalidConfig, c.Length, MaxSide)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick %v must be positive", ErrInvalidConfig, c.Tick)
	case c.Train < 0:
		return fmt.Errorf("%w: negative training episodes %d", ErrInvalidConfig, c.Train)
	case c.Frontend != FrontendTerminal && c.Frontend != FrontendWindow:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
	}
	return nil
}

// Environ reads SNAKE_PIT_* pairs from the dotenv file at path, if it
// exists, and overlays the process environment on top.
func Environ(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		env = make(map[string]string)
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// Parse builds a Config from defaults, then env, then args. Unknown
// SNAKE_PIT_* keys are ignored.
func Parse(args []string, env map[string]string) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("snake-pit", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.UintVar(&cfg.Height, "height", cfg.Height, "pit height in cells")
	fset.UintVar(&cfg.Width, "width", cfg.Width, "pit width in cells")
	fset.UintVar(&cfg.Length, "length", cfg.Length, "initial snake length")
	fset.DurationVar(&cfg.Tick, "tick", cfg.Tick, "time between moves")
	fset.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed (0 = time based)")
	fset.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "terminal or window")
	fset.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "let the Q-learning agent steer")
	fset.IntVar(&cfg.Train, "train", cfg.Train, "headless training episodes before playing")
	fset.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to the logs directory")

	var envErr error
	fset.VisitAll(func(f *flag.Flag) {
		key := EnvPrefix + strings.ToUpper(f.Name)
		v, ok := env[key]
		if !ok || envErr != nil {
			return
		}
		if err := fset.Set(f.Name, v); err != nil {
			envErr = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
		}
	})
	if envErr != nil {
		return cfg, envErr
	}

	if err := fset.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if fset.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fset.Args())
	}
	return cfg, cfg.Validate()
}

// Usage describes every flag, for -h output.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: snake-pit [flags]")
	fmt.Fprintln(w, "  -height uint      pit height in cells (default 20)")
	fmt.Fprintln(w, "  -width uint       pit width in cells (default 40)")
	fmt.Fprintln(w, "  -length uint      initial snake length (default 3)")
	fmt.Fprintln(w, "  -tick duration    time between moves (default 150ms)")
	fmt.Fprintln(w, "  -seed uint        food placement seed, 0 = time based")
	fmt.Fprintln(w, "  -frontend string  terminal or window (default terminal)")
	fmt.Fprintln(w, "  -autopilot        let the Q-learning agent steer")
	fmt.Fprintln(w, "  -train int        headless training episodes before playing")
	fmt.Fprintln(w, "  -debug            write logs to the logs directory")
	fmt.Fprintf(w, "flags may also be set as %sNAME in the environment or a .env file\n", EnvPrefix)
}
