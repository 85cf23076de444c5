// Package solve maps day numbers to the solvers that answer both parts of
// that day's puzzle.
package solve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"
)

var (
	// ErrUnknownDay indicates a day with no registered solver.
	ErrUnknownDay = errors.New("solve: no solver for day")
	// ErrGuardLoops indicates a day 6 input whose guard never leaves the lab.
	ErrGuardLoops = errors.New("solve: guard walks in a loop")
)

// Answer holds the results of both puzzle parts.
type Answer struct {
	Part1 int
	Part2 int
}

func (a Answer) String() string {
	return fmt.Sprintf("Part 1: %d\nPart 2: %d", a.Part1, a.Part2)
}

// Solver reads one day's input and answers both parts.
type Solver func(ctx context.Context, r io.Reader, log *zap.Logger) (Answer, error)

// Registry is a day → Solver table. The zero value is not usable; call
// NewRegistry or Default.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register binds day to s, replacing any previous solver.
func (r *Registry) Register(day int, s Solver) {
	r.solvers[day] = s
}

// Lookup returns the solver for day or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Option configures Default.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers bounds the day 6 loop search. Zero means one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Default returns a registry with days 1 through 6.
func Default(opts ...Option) *Registry {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := NewRegistry()
	r.Register(1, Day1)
	r.Register(2, Day2)
	r.Register(3, Day3)
	r.Register(4, Day4)
	r.Register(5, Day5)
	r.Register(6, day6(o.workers))
	return r
}
