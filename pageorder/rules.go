package pageorder

// Rule requires Before to appear earlier than After.
type Rule struct {
	Before, After int
}

// Rules is an immutable set of precedence rules.
// The zero value holds no rules.
type Rules struct {
	set   map[Rule]struct{}
	after map[int][]int // Before -> every After, in input order
}

// NewRules indexes rs. Duplicate rules are kept once.
func NewRules(rs []Rule) Rules {
	r := Rules{
		set:   make(map[Rule]struct{}, len(rs)),
		after: make(map[int][]int),
	}
	for _, rule := range rs {
		if _, dup := r.set[rule]; dup {
			continue
		}
		r.set[rule] = struct{}{}
		r.after[rule.Before] = append(r.after[rule.Before], rule.After)
	}

	return r
}

// Precedes reports whether a rule requires a before b.
func (r Rules) Precedes(a, b int) bool {
	_, ok := r.set[Rule{Before: a, After: b}]
	return ok
}

// Len returns the number of distinct rules.
func (r Rules) Len() int {
	return len(r.set)
}

// successors lists the pages that must follow page.
func (r Rules) successors(page int) []int {
	return r.after[page]
}
