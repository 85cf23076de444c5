package patrol

import (
	"context"
	"errors"
	"runtime"
)

var (
	// ErrBadCell indicates a floor-plan rune other than . # ^ > v <.
	ErrBadCell = errors.New("patrol: unknown map cell")
	// ErrNoGuard indicates a floor plan without a guard marker.
	ErrNoGuard = errors.New("patrol: no guard on map")
	// ErrManyGuards indicates more than one guard marker.
	ErrManyGuards = errors.New("patrol: more than one guard on map")
	// ErrGuardOutside indicates a guard position outside the map.
	ErrGuardOutside = errors.New("patrol: guard outside map")
	// ErrGuardBlocked indicates a guard standing on an obstacle.
	ErrGuardBlocked = errors.New("patrol: guard on obstacle")
)

// Direction is the way a guard faces.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// TurnRight returns d rotated 90° clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Delta returns the (dx, dy) step for d, with y growing downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return "?"
}

// ParseDirection maps a guard marker to its Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

// Guard is a position plus facing.
type Guard struct {
	X, Y int
	Dir  Direction
}

// Ahead returns the cell the guard faces.
func (g Guard) Ahead() (x, y int) {
	dx, dy := g.Dir.Delta()
	return g.X + dx, g.Y + dy
}

// Route summarizes one walk.
type Route struct {
	// Visited counts distinct cells entered, the start cell included.
	Visited int
	// Loop is true when the walk would never leave the map.
	Loop bool
}

// Option configures LoopPlacements.
type Option func(*options)

type options struct {
	ctx         context.Context
	workers     int
	onCandidate func(x, y int, loops bool)
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets the cancellation context. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers bounds the number of placements evaluated at once.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithOnCandidate installs a hook called once per evaluated placement.
// The hook is called from worker goroutines and must be safe for
// concurrent use.
func WithOnCandidate(fn func(x, y int, loops bool)) Option {
	return func(o *options) {
		o.onCandidate = fn
	}
}
