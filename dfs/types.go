// Package dfs defines visitation states and sentinel errors for
// depth-first traversal.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is in the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrNilSuccessors is returned when TopologicalSort is given a nil
	// successor function.
	ErrNilSuccessors = errors.New("dfs: successor function is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
