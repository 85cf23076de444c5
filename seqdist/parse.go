package seqdist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseColumns reads two whitespace-separated integer columns, one pair per
// line. Blank lines are skipped. A line with a field count other than two,
// or a field that is not an integer, yields ErrBadLine with the line number.
func ParseColumns(r io.Reader) (left, right []int, err error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d has %d fields", ErrBadLine, lineNo, len(fields))
		}
		lv, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, lineNo, err)
		}
		rv, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, lineNo, err)
		}
		left = append(left, lv)
		right = append(right, rv)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("seqdist: read columns: %w", err)
	}

	return left, right, nil
}
