// Package generator provides tunable options and error definitions
// for binary-tree maze generation.
package generator

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for generation and verification.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("generator: invalid option supplied")

	// ErrExitOutOfBounds is returned when a forced exit lies outside the grid.
	ErrExitOutOfBounds = errors.New("generator: exit outside the grid")

	// ErrCycle is returned by Verify when a carved wall joins two rooms
	// that were already connected.
	ErrCycle = errors.New("generator: rooms form a cycle")

	// ErrDisconnected is returned by Verify when the rooms do not form a
	// single connected component.
	ErrDisconnected = errors.New("generator: rooms are not connected")
)

// Option configures generation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the generator runs.
type Option func(*Options)

// Options holds the parameters of a generation run.
type Options struct {
	// Rand is the only source of randomness: wall-removal direction and
	// random exit placement both draw from it.
	Rand *rand.Rand

	// RandomExits places both exits at random boundary cells. When false,
	// exits go to (0, cols-2) and (rows-1, 1).
	RandomExits bool

	// Exits, when non-nil, overrides exit placement entirely.
	Exits *[2]grid.Coord

	// Logger receives a debug summary of each run.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns Options with:
//   - a time-seeded Rand
//   - random exit placement
//   - a logger that discards output.
func DefaultOptions() Options {
	return Options{
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		RandomExits: true,
		Logger:      discardLogger(),
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithRand sets the random source. A nil r is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil rand source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed seeds a fresh random source, making the run reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRandomExits toggles random exit placement.
func WithRandomExits(random bool) Option {
	return func(o *Options) {
		o.RandomExits = random
	}
}

// WithExits forces the two exits to a and b. Bounds are checked against
// the grid at generation time (ErrExitOutOfBounds).
func WithExits(a, b grid.Coord) Option {
	return func(o *Options) {
		o.Exits = &[2]grid.Coord{a, b}
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

// Stats summarises the room structure of a grid, as reported by Verify.
type Stats struct {
	// Rooms is the number of odd/odd passage cells.
	Rooms int
	// Carves is the number of open walls joining two rooms.
	Carves int
}
