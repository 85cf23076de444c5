package pageorder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseManual reads the rules section ("X|Y" per line), a blank line, then
// the updates section (comma-separated pages per line).
func ParseManual(r io.Reader) (Rules, []Update, error) {
	var (
		rules     []Rule
		updates   []Update
		inUpdates bool
		lineNo    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(rules) > 0 {
				inUpdates = true
			}
			continue
		}
		if !inUpdates {
			rule, err := parseRule(line)
			if err != nil {
				return Rules{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			rules = append(rules, rule)
			continue
		}
		u, err := parseUpdate(line)
		if err != nil {
			return Rules{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		updates = append(updates, u)
	}
	if err := sc.Err(); err != nil {
		return Rules{}, nil, fmt.Errorf("pageorder: read manual: %w", err)
	}

	return NewRules(rules), updates, nil
}

func parseRule(line string) (Rule, error) {
	a, b, ok := strings.Cut(line, "|")
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, line)
	}
	before, err1 := strconv.Atoi(strings.TrimSpace(a))
	after, err2 := strconv.Atoi(strings.TrimSpace(b))
	if err1 != nil || err2 != nil {
		return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, line)
	}

	return Rule{Before: before, After: after}, nil
}

func parseUpdate(line string) (Update, error) {
	fields := strings.Split(line, ",")
	u := make(Update, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadUpdate, line)
		}
		u[i] = v
	}

	return u, nil
}
