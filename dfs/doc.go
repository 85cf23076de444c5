// Package dfs implements depth-first topological ordering over any
// comparable node type, with cycle detection and cancellation.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of nodes such that for
//     every edge u→v reported by the successor function, u appears before
//     v. Nodes are colored White, Gray, Black; meeting a Gray node again is
//     a back edge, reported as ErrCycleDetected.
//
// Why:
//   - Resort sequences that must respect a pairwise precedence relation
//     (print queues, build steps, dependency lists)
//   - Detect inconsistent precedence rules before they cause wrong output
//
// Determinism:
//
//   - DFS roots are taken in the order of the nodes slice and successors in
//     the order the successor function returns them, so the same input
//     always yields the same order.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilSuccessors        successor function is nil
//   - ErrCycleDetected        cycle discovered among the given nodes
//   - context.Canceled        sort canceled via WithCancelContext
package dfs
