package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc24/internal/input"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644))
	}
}

func TestPath(t *testing.T) {
	assert.Equal(t, "day6.txt", input.Name(6))
	assert.Equal(t, filepath.Join("inputs", "day12.txt"), input.Path("inputs", 12))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "day3.txt")

	f, err := input.Open(dir, 3)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, filepath.Join(dir, "day3.txt"), f.Name())

	_, err = input.Open(dir, 4)
	assert.ErrorIs(t, err, input.ErrMissingInput)

	assert.True(t, input.Exists(dir, 3))
	assert.False(t, input.Exists(dir, 4))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"day10.txt", "day2.txt", "day1.txt",
		"day0.txt", "day02.txt", "dayx.txt", "day3.txt.bak", "notes.txt",
	)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "day5.txt"), 0o755))

	days, err := input.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 10}, days)
}

func TestDiscover_MissingDir(t *testing.T) {
	days, err := input.Discover(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, days)
}
