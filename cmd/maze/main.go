package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/solver"
)

var (
	log = logrus.New()

	cfg config
)

func init() {
	cfg = defaultConfig()
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "maze rows (odd values give a closed frame)")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "maze columns")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.BoolVar(&cfg.RandomExits, "random-exits", true, "place exits at random boundary cells")
	flag.StringVar(&cfg.Strategy, "strategy", "layered", "flood fill: layered or queue")
	flag.BoolVar(&cfg.Solve, "solve", true, "solve the maze and overlay the path")
	flag.BoolVar(&cfg.Verify, "verify", false, "check the maze is perfect")
	flag.IntVar(&cfg.Count, "count", 1, "number of mazes; above 1 prints a summary only")
	flag.IntVar(&cfg.Workers, "workers", 4, "concurrent mazes in batch mode")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func main() {
	flag.Parse()
	setupLogging()

	strategy, err := cfg.validate()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{
		"rows":     cfg.Rows,
		"cols":     cfg.Cols,
		"seed":     cfg.Seed,
		"strategy": strategy,
	}).Debug("starting")

	if cfg.Count > 1 {
		sum, err := runBatch(cfg, strategy)
		if err != nil {
			log.Fatal("batch failed: ", err)
		}
		log.WithFields(sum.fields()).Info("batch finished")
		return
	}

	if err := runOne(cfg, strategy); err != nil {
		log.Fatal(err)
	}
}

// runOne generates, optionally verifies and solves one maze, printing the
// grid before and after the path overlay.
func runOne(c config, strategy solver.Strategy) error {
	g, err := generator.BinaryTree(c.Rows, c.Cols,
		generator.WithSeed(c.Seed),
		generator.WithRandomExits(c.RandomExits),
		generator.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Println(g)

	if c.Verify {
		st, err := generator.Verify(g)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		log.WithFields(logrus.Fields{"rooms": st.Rooms, "carves": st.Carves}).Info("maze is perfect")
	}
	if !c.Solve {
		return nil
	}

	res, err := solver.Solve(g, solver.WithStrategy(strategy), solver.WithLogger(log))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if !res.Ok() {
		log.WithField("status", res.Status).Warn("no solution")
		return nil
	}
	log.WithFields(logrus.Fields{
		"from":  res.Source,
		"to":    res.Target,
		"steps": res.Length(),
	}).Info("solved")
	fmt.Println()
	fmt.Println(grid.OverlayPath(g, res.Path))
	return nil
}
