// Package input locates puzzle inputs on disk. Each day reads
// <dir>/day<N>.txt.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultDir is the inputs directory used when none is configured.
const DefaultDir = "inputs"

// ErrMissingInput indicates that a day's input file does not exist.
var ErrMissingInput = errors.New("input: missing input file")

const pattern = "day*.txt"

// Name returns the file name for day.
func Name(day int) string {
	return fmt.Sprintf("day%d.txt", day)
}

// Path returns the input path for day under dir.
func Path(dir string, day int) string {
	return filepath.Join(dir, Name(day))
}

// Open opens the input for day. The caller closes the file.
func Open(dir string, day int) (*os.File, error) {
	p := Path(dir, day)
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: day %d (%s)", ErrMissingInput, day, p)
	}
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", p, err)
	}

	return f, nil
}

// Exists reports whether the input for day is a regular file.
func Exists(dir string, day int) bool {
	st, err := os.Stat(Path(dir, day))
	return err == nil && st.Mode().IsRegular()
}

// Discover returns the sorted day numbers that have an input file in dir.
// Files matching day*.txt whose middle is not a positive integer are
// skipped. A missing dir yields no days.
func Discover(dir string) ([]int, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("input: discover %s: %w", dir, err)
	}

	var days []int
	for _, m := range matches {
		n, ok := dayOf(m)
		if !ok || slices.Contains(days, n) {
			continue
		}
		days = append(days, n)
	}
	slices.Sort(days)

	return days, nil
}

func dayOf(name string) (int, bool) {
	s := strings.TrimSuffix(strings.TrimPrefix(name, "day"), ".txt")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}
