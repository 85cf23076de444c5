// Package dfs provides topological sort over an implicit directed graph
// given as a node list plus a successor function.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every directed edge u→v, u appears before v in the ordering.
// If the nodes contain a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[K comparable] struct {
	successors func(K) []K // edge source
	opts       topoOptions // traversal options (cancellation)
	member     map[K]bool  // nodes taking part in the sort
	state      map[K]int   // visitation state: 0=White,1=Gray,2=Black
	order      []K         // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of nodes under the edges
// reported by successors. Successors that are not in nodes are ignored, so
// a global relation can be restricted to a subset simply by passing that
// subset. Duplicate entries in nodes appear once in the result.
// If successors is nil, returns ErrNilSuccessors.
// If a cycle is detected, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort[K comparable](nodes []K, successors func(K) []K, options ...TopoOption) ([]K, error) {
	// 1. Validate successor function
	if successors == nil {
		return nil, ErrNilSuccessors
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	sorter := &topoSorter[K]{
		successors: successors,
		opts:       opts,
		member:     make(map[K]bool, len(nodes)),
		state:      make(map[K]int, len(nodes)), // all nodes start as White (0)
		order:      make([]K, 0, len(nodes)),    // capacity hint for post-order
	}
	for _, v := range nodes {
		sorter.member[v] = true
	}
	// 4. Drive DFS from every unvisited node, in caller order
	for _, v := range nodes {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter[K]) visit(id K) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 5. Explore each outgoing edge that stays inside the node set
	for _, next := range t.successors(id) {
		if !t.member[next] {
			continue
		}
		if err := t.visit(next); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black) and record in post-order
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
