// Package pageorder checks and repairs page sequences ("updates") against a
// set of pairwise precedence rules.
//
// A rule X|Y says that when both X and Y appear in an update, X must come
// somewhere before Y. Rules only constrain pages that are present: an update
// is correctly ordered when no later page is required to precede an earlier
// one.
//
// Reorder restricts the rules to the pages of one update and sorts them
// topologically (package dfs). Rules that are cyclic when restricted to an
// update cannot be satisfied and yield ErrCycleDetected.
//
// Complexity:
//
//   - IsOrdered: O(P²) per update of P pages, set lookups O(1)
//   - Reorder:   O(P + R_u), R_u = rules among the update's pages
package pageorder
