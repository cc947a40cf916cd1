// Package gridgraph provides utilities to treat a 2D grid of cells as a graph
// with unit-weight orthogonal edges. It supports:
//
//   - Construction from integer values, text rows, or random generation
//   - Bounds and move validation that never panics
//   - Neighbor enumeration in a fixed order (right, left, down, up)
//   - Identification of connected regions of Open cells
//
// Cells with value < OpenThreshold are Blocked; cells with value ≥ OpenThreshold are Open.
package gridgraph

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// The input is copied, so later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Rows: rows, Cols: cols, open: make([]bool, rows*cols)}
	for r, row := range values {
		for c, v := range row {
			g.open[r*cols+c] = v >= opts.OpenThreshold
		}
	}

	return g, nil
}

// From2D is shorthand for NewGrid with DefaultGridOptions.
func From2D(values [][]int) (*Grid, error) {
	return NewGrid(values, DefaultGridOptions())
}

// FromStrings builds a Grid from text rows, one byte per cell.
// '_' and '.' are Open; 'X' and '#' are Blocked. Any other byte yields ErrInvalidGlyph.
func FromStrings(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	g := &Grid{Rows: len(rows), Cols: cols, open: make([]bool, len(rows)*cols)}
	for r, row := range rows {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for c := 0; c < cols; c++ {
			switch row[c] {
			case GlyphOpen, '.':
				g.open[r*cols+c] = true
			case GlyphBlocked, '#':
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidGlyph, row[c], Cell{Row: r, Col: c})
			}
		}
	}

	return g, nil
}

// NewOpen returns a rows×cols Grid in which every cell is Open.
func NewOpen(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Rows: rows, Cols: cols, open: make([]bool, rows*cols)}
	for i := range g.open {
		g.open[i] = true
	}

	return g, nil
}

// Random returns a rows×cols Grid where each cell is Blocked with probability
// obstacleProb. A nil rng uses a source seeded with 1.
func Random(rows, cols int, obstacleProb float64, rng *rand.Rand) (*Grid, error) {
	if obstacleProb < 0 || obstacleProb > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrObstacleProbability, obstacleProb)
	}
	g, err := NewOpen(rows, cols)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	for i := range g.open {
		g.open[i] = rng.Float64() >= obstacleProb
	}

	return g, nil
}

// WithOpen returns a copy of g with the given cells forced Open.
// Out-of-bounds cells yield ErrOutOfBounds.
func (g *Grid) WithOpen(cells ...Cell) (*Grid, error) {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, open: make([]bool, len(g.open))}
	copy(out.open, g.open)
	for _, c := range cells {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		out.open[g.Index(c)] = true
	}

	return out, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// IsOpen reports whether c is in bounds and Open.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && g.open[g.Index(c)]
}

// IsValidMove reports whether a move may land on c: within bounds and not Blocked.
// Bounds are checked before any cell access.
func (g *Grid) IsValidMove(c Cell) bool {
	return g.IsOpen(c)
}

// State returns the CellState of c, or ErrOutOfBounds.
func (g *Grid) State(c Cell) (CellState, error) {
	if !g.InBounds(c) {
		return Blocked, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
	}
	if g.open[g.Index(c)] {
		return Open, nil
	}
	return Blocked, nil
}

// Neighbors returns the orthogonal neighbors of c that are valid moves,
// in the fixed order right, left, down, up.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.IsValidMove(n) {
			out = append(out, n)
		}
	}
	return out
}

// OpenCount returns the number of Open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, o := range g.open {
		if o {
			n++
		}
	}
	return n
}

// Values returns the grid as a fresh [][]int with 1 for Open and 0 for Blocked.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.Rows)
	for r := range out {
		out[r] = make([]int, g.Cols)
		for c := range out[r] {
			if g.open[r*g.Cols+c] {
				out[r][c] = 1
			}
		}
	}
	return out
}

// Strings renders each row using GlyphOpen and GlyphBlocked.
// The result is accepted by FromStrings.
func (g *Grid) Strings() []string {
	out := make([]string, g.Rows)
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		sb.Reset()
		for c := 0; c < g.Cols; c++ {
			if g.open[r*g.Cols+c] {
				sb.WriteByte(GlyphOpen)
			} else {
				sb.WriteByte(GlyphBlocked)
			}
		}
		out[r] = sb.String()
	}
	return out
}

// String renders the grid one bracketed row per line, e.g. "[_ X _]".
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Strings() {
		sb.WriteByte('[')
		for i := 0; i < len(row); i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(row[i])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// Index maps c to a row‑major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}

// ParseCell parses "row,col" (surrounding spaces and parentheses allowed).
func ParseCell(s string) (Cell, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrCellSyntax, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrCellSyntax, s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrCellSyntax, s, err)
	}

	return Cell{Row: r, Col: c}, nil
}
