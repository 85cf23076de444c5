package solve_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/aoc24/internal/input"
	"github.com/katalvlaran/aoc24/internal/solve"
	"github.com/katalvlaran/aoc24/patrol"
)

func TestAnswer_String(t *testing.T) {
	assert.Equal(t, "Part 1: 11\nPart 2: 31", solve.Answer{Part1: 11, Part2: 31}.String())
}

func TestRegistry(t *testing.T) {
	r := solve.NewRegistry()
	assert.Empty(t, r.Days())

	_, err := r.Lookup(1)
	assert.ErrorIs(t, err, solve.ErrUnknownDay)

	r.Register(3, solve.Day3)
	r.Register(1, solve.Day1)
	assert.Equal(t, []int{1, 3}, r.Days())

	s, err := r.Lookup(3)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestDefault_Days(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, solve.Default().Days())
}

// TestDefault_Samples runs every registered solver on its sample input.
func TestDefault_Samples(t *testing.T) {
	want := map[int]solve.Answer{
		1: {Part1: 11, Part2: 31},
		2: {Part1: 2, Part2: 4},
		3: {Part1: 161, Part2: 48},
		4: {Part1: 18, Part2: 9},
		5: {Part1: 143, Part2: 123},
		6: {Part1: 41, Part2: 6},
	}
	reg := solve.Default(solve.WithWorkers(2))
	for _, day := range reg.Days() {
		t.Run(input.Name(day), func(t *testing.T) {
			s, err := reg.Lookup(day)
			require.NoError(t, err)
			f, err := input.Open("testdata", day)
			require.NoError(t, err)
			defer f.Close()

			got, err := s(context.Background(), f, zaptest.NewLogger(t))
			require.NoError(t, err)
			assert.Equal(t, want[day], got)
		})
	}
}

func TestDay_LogsTimings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := solve.Day1(context.Background(), strings.NewReader("1 2\n3 4\n"), zap.New(core))
	require.NoError(t, err)

	for _, msg := range []string{"parse", "part 1", "part 2"} {
		entries := logs.FilterMessage(msg).All()
		if assert.Len(t, entries, 1, msg) {
			assert.Contains(t, entries[0].ContextMap(), "took")
		}
	}
}

func TestDay_Errors(t *testing.T) {
	log := zap.NewNop()
	ctx := context.Background()

	_, err := solve.Day1(ctx, strings.NewReader("1 2\n3\n"), log)
	assert.Error(t, err)

	_, err = solve.Day5(ctx, strings.NewReader("1|2\n2|1\n\n1,2,3\n2,1,3\n"), log)
	assert.Error(t, err, "cyclic rules cannot be reordered")

	_, err = solve.Day6(ctx, strings.NewReader(".#.\n#^#\n.#.\n"), log)
	assert.ErrorIs(t, err, solve.ErrGuardLoops)

	_, err = solve.Day6(ctx, strings.NewReader("...\n...\n"), log)
	assert.ErrorIs(t, err, patrol.ErrNoGuard)
}

func TestDay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solve.Day1(ctx, strings.NewReader("1 2\n"), zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)

	f, err := input.Open("testdata", 6)
	require.NoError(t, err)
	defer f.Close()
	_, err = solve.Day6(ctx, f, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}
