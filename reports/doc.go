// Package reports validates reactor-style level reports: integer sequences
// that must move in one direction by small steps.
//
// A report is safe when its levels are strictly increasing or strictly
// decreasing and every adjacent step has magnitude in [MinStep, MaxStep].
// The dampened check also accepts reports that become safe after removing
// a single level.
//
// Complexity:
//
//   - IsSafe:         O(L)
//   - IsSafeDampened: O(L²) worst case, no allocation
package reports
