// Package gridgraph defines core types and options
// for the gridgraph package of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Glyphs used by FromStrings and the textual rendering of a Grid.
const (
	GlyphOpen    = '_'
	GlyphBlocked = 'X'
)

// DefaultObstacleProbability is the blocked-cell ratio used by generators
// when the caller does not choose one.
const DefaultObstacleProbability = 0.35

// Cell is a (row, column) coordinate pair.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// CellState tells whether movement through a cell is permitted.
type CellState int

const (
	// Blocked cells are obstacles: never visited, never assigned a distance.
	Blocked CellState = iota
	// Open cells may be traversed.
	Open
)

// String returns "open" or "blocked".
func (s CellState) String() string {
	if s == Open {
		return "open"
	}
	return "blocked"
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered Open.
	OpenThreshold int
}

// DefaultGridOptions returns GridOptions with OpenThreshold=1
// (values ≥1 are open, everything else is blocked).
func DefaultGridOptions() GridOptions {
	return GridOptions{OpenThreshold: 1}
}

// neighborOffsets lists the orthogonal moves in the fixed visitation order
// used by every traversal: right, left, down, up.
var neighborOffsets = [4]Cell{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
}

// Grid is a rectangular field of Open and Blocked cells. It is immutable once built.
// Rows and Cols define the dimensions; open holds one flag per cell in row-major order.
type Grid struct {
	Rows, Cols int
	open       []bool
}
