package main

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/solver"
)

// summary aggregates batch outcomes.
type summary struct {
	mu       sync.Mutex
	total    int
	byStatus map[solver.Status]int
	steps    int
	perfect  int
	unsolved int
}

// add records one maze. A nil res means the maze was not solved.
func (s *summary) add(res *solver.Result, perfect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	if perfect {
		s.perfect++
	}
	if res == nil {
		s.unsolved++
		return
	}
	s.byStatus[res.Status]++
	s.steps += res.Length()
}

func (s *summary) fields() logrus.Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := logrus.Fields{"mazes": s.total}
	for st, n := range s.byStatus {
		f[st.String()] = n
	}
	if solved := s.byStatus[solver.Solved]; solved > 0 {
		f["mean_steps"] = fmt.Sprintf("%.2f", float64(s.steps)/float64(solved))
	}
	if s.perfect > 0 {
		f["perfect"] = s.perfect
	}
	if s.unsolved > 0 {
		f["unsolved"] = s.unsolved
	}
	return f
}

// runBatch generates c.Count independent mazes, at most c.Workers at a
// time, solving each unless c.Solve is off. Maze i uses seed c.Seed+i, so
// a batch replays exactly whatever the worker count.
func runBatch(c config, strategy solver.Strategy) (*summary, error) {
	sum := &summary{byStatus: make(map[solver.Status]int)}

	var g errgroup.Group
	g.SetLimit(c.Workers)
	for i := 0; i < c.Count; i++ {
		seed := c.Seed + int64(i)
		g.Go(func() error {
			m, err := generator.BinaryTree(c.Rows, c.Cols,
				generator.WithSeed(seed),
				generator.WithRandomExits(c.RandomExits),
			)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			perfect := false
			if c.Verify {
				if _, err := generator.Verify(m); err != nil {
					return fmt.Errorf("seed %d: %w", seed, err)
				}
				perfect = true
			}
			if !c.Solve {
				sum.add(nil, perfect)
				return nil
			}
			res, err := solver.Solve(m, solver.WithStrategy(strategy))
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			log.WithFields(logrus.Fields{"seed": seed, "status": res.Status}).Debug("maze done")
			sum.add(res, perfect)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sum, nil
}
