package reports

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Step bounds for adjacent levels, inclusive.
const (
	MinStep = 1
	MaxStep = 3
)

// ErrBadLevel indicates a level that is not an integer.
var ErrBadLevel = errors.New("reports: level must be an integer")

// Report is one line of levels.
type Report []int

// IsSafe reports whether r is monotonic with every step in [MinStep, MaxStep].
// Reports with fewer than two levels are safe.
func IsSafe(r Report) bool {
	return safeSkipping(r, -1)
}

// IsSafeDampened reports whether r is safe or becomes safe after removing
// exactly one level. Reports with at most two levels are always safe.
func IsSafeDampened(r Report) bool {
	if len(r) <= 2 || IsSafe(r) {
		return true
	}
	for skip := range r {
		if safeSkipping(r, skip) {
			return true
		}
	}

	return false
}

// CountSafe returns how many reports satisfy IsSafe.
func CountSafe(rs []Report) int {
	return count(rs, IsSafe)
}

// CountSafeDampened returns how many reports satisfy IsSafeDampened.
func CountSafeDampened(rs []Report) int {
	return count(rs, IsSafeDampened)
}

func count(rs []Report, pred func(Report) bool) int {
	n := 0
	for _, r := range rs {
		if pred(r) {
			n++
		}
	}

	return n
}

// safeSkipping applies the IsSafe rule to r with index skip left out
// (skip < 0 keeps every level). The first remaining step fixes the direction.
func safeSkipping(r Report, skip int) bool {
	dir := 0
	prev, havePrev := 0, false
	for i, v := range r {
		if i == skip {
			continue
		}
		if !havePrev {
			prev, havePrev = v, true
			continue
		}
		diff := v - prev
		if dir == 0 {
			dir = sign(diff)
		}
		if sign(diff) != dir || !validStep(diff) {
			return false
		}
		prev = v
	}

	return true
}

func validStep(diff int) bool {
	if diff < 0 {
		diff = -diff
	}

	return diff >= MinStep && diff <= MaxStep
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// ParseReports reads one report per non-empty line, levels separated by
// whitespace.
func ParseReports(r io.Reader) ([]Report, error) {
	var out []Report
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rep := make(Report, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadLevel, lineNo, f)
			}
			rep[i] = v
		}
		out = append(out, rep)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reports: read reports: %w", err)
	}

	return out, nil
}
