// Package solver provides tunable options, result types and error
// definitions for distance-label maze solving.
package solver

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for solving. None of them describe an unsolvable maze:
// that outcome is a Status, not an error.
var (
	// ErrCorruptLabels is returned when path reconstruction finds a label
	// with no predecessor. It means the flood fill and the reconstructor
	// disagree and should never happen on a grid labelled by this package.
	ErrCorruptLabels = errors.New("solver: inconsistent distance labels")

	// ErrNotNormalized is returned when the flood fill meets an open cell
	// that has not been turned into a label.
	ErrNotNormalized = errors.New("solver: grid is not normalized")

	// ErrOutOfBounds is returned when a source or target is off the grid.
	ErrOutOfBounds = errors.New("solver: coordinate outside the grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Strategy selects how the flood fill expands.
type Strategy int

const (
	// Layered repeats full-grid passes, labelling layer k+1 from layer k,
	// until the target is labelled or a pass changes nothing.
	// O(rows×cols×diameter).
	Layered Strategy = iota
	// Queue runs a deque-based breadth-first search. O(rows×cols).
	// It leaves exactly the labels Layered leaves.
	Queue
)

// String returns the flag spelling of s.
func (s Strategy) String() string {
	switch s {
	case Layered:
		return "layered"
	case Queue:
		return "queue"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "layered":
		return Layered, nil
	case "queue":
		return Queue, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Status is the outcome of a solve.
type Status int

const (
	// Solved means Result.Path holds a shortest route.
	Solved Status = iota
	// MissingExits means the grid holds fewer than two exits.
	MissingExits
	// ExtraExits means the grid holds more than two exits, so the route
	// to solve is ambiguous.
	ExtraExits
	// EncircledExit means an exit is on the boundary and walled in.
	EncircledExit
	// Unreachable means the flood fill reached a fixed point without
	// labelling the target.
	Unreachable
)

// String returns a short description of s.
func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case MissingExits:
		return "missing exits"
	case ExtraExits:
		return "extra exits"
	case EncircledExit:
		return "encircled exit"
	case Unreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result holds the outcome of Solve or SolveBetween:
//   - Status: Solved or the reason there is no solution.
//   - Source, Target: the exits used; zero when MissingExits or ExtraExits.
//   - Labels: the working grid after the flood fill, possibly partial;
//     nil when the fill never ran.
//   - Path: target→source, nil unless Solved.
type Result struct {
	Status Status
	Source grid.Coord
	Target grid.Coord
	Labels *grid.Grid
	Path   []grid.Coord
}

// Ok reports whether a path was found.
func (r *Result) Ok() bool { return r.Status == Solved }

// Length returns the number of steps on the path, 0 when there is none.
func (r *Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Forward returns the path in source→target order as a new slice.
func (r *Result) Forward() []grid.Coord {
	if r.Path == nil {
		return nil
	}
	out := make([]grid.Coord, len(r.Path))
	for i, c := range r.Path {
		out[len(r.Path)-1-i] = c
	}
	return out
}

// Option configures solving via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a solve.
type Options struct {
	// Strategy picks the flood-fill implementation.
	Strategy Strategy

	// OnLayer is called after layer k has been fully expanded, with the
	// number of cells that received label k+1.
	OnLayer func(k, labelled int)

	// Logger receives debug messages on termination.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns Options with:
//   - the Layered strategy
//   - a no-op OnLayer hook
//   - a logger that discards output.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Strategy: Layered,
		OnLayer:  func(int, int) {},
		Logger:   l,
	}
}

// WithStrategy selects the flood-fill strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Layered, Queue:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithOnLayer registers a per-layer callback.
func WithOnLayer(fn func(k, labelled int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
