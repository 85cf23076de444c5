package solve

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc24/mulscan"
	"github.com/katalvlaran/aoc24/pageorder"
	"github.com/katalvlaran/aoc24/patrol"
	"github.com/katalvlaran/aoc24/reports"
	"github.com/katalvlaran/aoc24/seqdist"
	"github.com/katalvlaran/aoc24/wordsearch"
)

// timed runs fn and logs its duration at debug level.
func timed(log *zap.Logger, step string, fn func() error) error {
	start := time.Now()
	err := fn()
	log.Debug(step, zap.Duration("took", time.Since(start)), zap.Error(err))
	return err
}

// Day1 answers total distance and similarity of two location lists.
func Day1(ctx context.Context, r io.Reader, log *zap.Logger) (Answer, error) {
	var (
		a           Answer
		left, right []int
	)
	err := timed(log, "parse", func() (err error) {
		left, right, err = seqdist.ParseColumns(r)
		return err
	})
	if err != nil {
		return Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	log.Debug("parsed lists", zap.Int("len", len(left)))

	err = timed(log, "part 1", func() (err error) {
		a.Part1, err = seqdist.Distance(left, right)
		return err
	})
	if err != nil {
		return Answer{}, err
	}
	_ = timed(log, "part 2", func() error {
		a.Part2 = seqdist.Similarity(left, right)
		return nil
	})

	return a, nil
}

// Day2 counts safe reports, strictly and with the one-level dampener.
func Day2(ctx context.Context, r io.Reader, log *zap.Logger) (Answer, error) {
	rs, err := reports.ParseReports(r)
	if err != nil {
		return Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	log.Debug("parsed reports", zap.Int("count", len(rs)))

	var a Answer
	_ = timed(log, "part 1", func() error {
		a.Part1 = reports.CountSafe(rs)
		return nil
	})
	_ = timed(log, "part 2", func() error {
		a.Part2 = reports.CountSafeDampened(rs)
		return nil
	})

	return a, nil
}

// Day3 sums mul(X,Y) products, then only those enabled by do()/don't().
func Day3(ctx context.Context, r io.Reader, log *zap.Logger) (Answer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Answer{}, fmt.Errorf("solve: read memory dump: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	text := string(data)
	log.Debug("read memory dump", zap.Int("bytes", len(data)))

	var a Answer
	_ = timed(log, "part 1", func() error {
		a.Part1 = mulscan.Multiply(text)
		return nil
	})
	_ = timed(log, "part 2", func() error {
		a.Part2 = mulscan.ConditionalMultiply(text)
		return nil
	})

	return a, nil
}

// Day4 counts XMAS occurrences and X-shaped MAS crosses.
func Day4(ctx context.Context, r io.Reader, log *zap.Logger) (Answer, error) {
	g, err := wordsearch.ParseGrid(r)
	if err != nil {
		return Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	log.Debug("parsed grid", zap.Int("width", g.Width), zap.Int("height", g.Height))

	var a Answer
	_ = timed(log, "part 1", func() error {
		a.Part1 = wordsearch.CountXMAS(g)
		return nil
	})
	_ = timed(log, "part 2", func() error {
		a.Part2 = wordsearch.CountCrossMAS(g)
		return nil
	})

	return a, nil
}

// Day5 sums middle pages of ordered updates, then of repaired ones.
func Day5(ctx context.Context, r io.Reader, log *zap.Logger) (Answer, error) {
	rules, updates, err := pageorder.ParseManual(r)
	if err != nil {
		return Answer{}, err
	}
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	log.Debug("parsed manual", zap.Int("rules", rules.Len()), zap.Int("updates", len(updates)))

	var a Answer
	err = timed(log, "part 1", func() (err error) {
		a.Part1, err = pageorder.SumOrderedMiddles(rules, updates)
		return err
	})
	if err != nil {
		return Answer{}, err
	}
	err = timed(log, "part 2", func() (err error) {
		a.Part2, err = pageorder.SumReorderedMiddles(rules, updates)
		return err
	})
	if err != nil {
		return Answer{}, err
	}

	return a, nil
}

// Day6 counts cells the guard visits and obstacle placements that trap it,
// searching placements with one worker per CPU.
func Day6(ctx context.Context, r io.Reader, log *zap.Logger) (Answer, error) {
	return day6(0)(ctx, r, log)
}

func day6(workers int) Solver {
	return func(ctx context.Context, r io.Reader, log *zap.Logger) (Answer, error) {
		lab, g, err := patrol.ParseLab(r)
		if err != nil {
			return Answer{}, err
		}
		log.Debug("parsed lab",
			zap.Int("width", lab.Width()),
			zap.Int("height", lab.Height()),
			zap.Stringer("guard", g.Dir))

		var a Answer
		err = timed(log, "part 1", func() error {
			route := patrol.Walk(lab, g)
			if route.Loop {
				return fmt.Errorf("%w after %d cells", ErrGuardLoops, route.Visited)
			}
			a.Part1 = route.Visited
			return nil
		})
		if err != nil {
			return Answer{}, err
		}

		err = timed(log, "part 2", func() (err error) {
			a.Part2, err = patrol.LoopPlacements(lab, g,
				patrol.WithContext(ctx),
				patrol.WithWorkers(workers))
			return err
		})
		if err != nil {
			return Answer{}, err
		}

		return a, nil
	}
}
