package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/lvmaze/solver"
)

// config collects the command-line settings.
type config struct {
	Rows, Cols  int
	Seed        int64
	RandomExits bool
	Strategy    string
	Solve       bool
	Verify      bool
	Count       int
	Workers     int
}

// defaultConfig starts from 15×15 and lets MAZE_ROWS / MAZE_COLS override
// the defaults before flags are parsed.
func defaultConfig() config {
	return config{
		Rows:        envInt("MAZE_ROWS", 15),
		Cols:        envInt("MAZE_COLS", 15),
		RandomExits: true,
		Strategy:    "layered",
		Solve:       true,
		Count:       1,
		Workers:     4,
	}
}

func (c config) validate() (solver.Strategy, error) {
	if c.Rows < 1 || c.Cols < 1 {
		return 0, fmt.Errorf("rows and cols must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.Count < 1 {
		return 0, errors.New("count must be positive")
	}
	if c.Workers < 1 {
		return 0, errors.New("workers must be positive")
	}
	return solver.ParseStrategy(c.Strategy)
}

// development reports whether MAZE_DEVELOPMENT is set to anything but "0".
func development() bool {
	v, ok := os.LookupEnv("MAZE_DEVELOPMENT")
	if !ok {
		return false
	}
	return v != "0"
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
