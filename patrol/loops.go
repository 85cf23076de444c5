package patrol

import (
	"golang.org/x/sync/errgroup"
)

// LoopPlacements counts the open cells, other than the guard's start, where
// one extra obstacle makes the guard walk in a loop.
//
// Placements are evaluated by at most WithWorkers goroutines. Cancelling the
// WithContext context stops the search and returns the context's error.
func LoopPlacements(lab *Lab, g Guard, opts ...Option) (int, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := lab.Check(g); err != nil {
		return 0, err
	}

	cells := candidates(lab, g)
	loops := make([]bool, len(cells))

	eg, ctx := errgroup.WithContext(o.ctx)
	eg.SetLimit(o.workers)
	for k, i := range cells {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, _ := walk(lab, g, i)
			loops[k] = r.Loop
			if o.onCandidate != nil {
				x, y := lab.grid.Coordinate(i)
				o.onCandidate(x, y, r.Loop)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	// The loop may have stopped launching without any worker observing it.
	if err := o.ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	for _, l := range loops {
		if l {
			count++
		}
	}

	return count, nil
}
