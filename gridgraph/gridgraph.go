// Package gridgraph provides utilities to treat a 2D grid of cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked cell access
//   - Row-major indexing for compact visited sets
package gridgraph

// conn4Offsets lists N, E, S, W as (dx, dy).
var conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// conn8Offsets lists N, NE, E, SE, S, SW, W, NW as (dx, dy).
var conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph[T any](values [][]T, opts GridOptions) (*GridGraph[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]T, w)
		copy(cells[y], values[y])
	}
	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &GridGraph[T]{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Map builds a new grid of the same shape whose cells are f applied to each
// cell of gg. Connectivity is preserved.
// Complexity: O(W×H).
func Map[T, U any](gg *GridGraph[T], f func(c Cell[T]) U) *GridGraph[U] {
	cells := make([][]U, gg.Height)
	for y := 0; y < gg.Height; y++ {
		cells[y] = make([]U, gg.Width)
		for x := 0; x < gg.Width; x++ {
			cells[y][x] = f(Cell[T]{X: x, Y: y, Value: gg.CellValues[y][x]})
		}
	}

	return &GridGraph[U]{
		Width:           gg.Width,
		Height:          gg.Height,
		CellValues:      cells,
		Conn:            gg.Conn,
		neighborOffsets: gg.neighborOffsets,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// At returns the value at (x,y). It panics if (x,y) is out of bounds.
func (gg *GridGraph[T]) At(x, y int) T {
	return gg.CellValues[y][x]
}

// AtOK returns the value at (x,y) and true, or the zero value and false
// when (x,y) lies outside the grid.
func (gg *GridGraph[T]) AtOK(x, y int) (T, bool) {
	if !gg.InBounds(x, y) {
		var zero T
		return zero, false
	}

	return gg.CellValues[y][x], true
}

// NeighborOffsets returns the precomputed neighbor offsets slice as (dx, dy)
// pairs, clockwise from north. Callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph[T]) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Len returns the number of cells, Width×Height.
func (gg *GridGraph[T]) Len() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph[T]) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
