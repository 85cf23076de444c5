// Package patrol simulates a guard walking a lab floor plan and finds
// where one extra obstacle would trap the guard in a loop.
//
// Movement rule: if the cell ahead is an obstacle, turn right 90°;
// otherwise step forward. The walk ends when the guard steps off the map,
// or when the guard enters a cell facing a direction it already entered
// that cell with, which means the walk repeats forever.
//
// What:
//
//   - Walk: distinct cells visited before leaving, or Loop=true.
//   - LoopPlacements: brute force over obstacle placements, evaluated by a
//     bounded pool of goroutines (golang.org/x/sync/errgroup).
//
// Only cells on the guard's unobstructed route can change that route, so
// LoopPlacements tries those cells alone. When the unobstructed route
// already loops, every open cell is tried.
//
// Complexity:
//
//   - Walk:           O(W×H) time (each cell entered at most 4 times), O(W×H) memory
//   - LoopPlacements: O(C×W×H) time for C candidate cells, spread over workers
//
// Errors:
//
//   - ErrBadCell, ErrNoGuard, ErrManyGuards: malformed floor plans
//   - ErrGuardOutside, ErrGuardBlocked: guard not on open floor
//   - context errors from WithContext
package patrol
