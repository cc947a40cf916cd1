package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrInvalidGlyph indicates an unknown character in a textual grid row.
	ErrInvalidGlyph = errors.New("gridgraph: invalid cell glyph")
	// ErrObstacleProbability indicates a probability outside [0,1].
	ErrObstacleProbability = errors.New("gridgraph: obstacle probability must be within [0,1]")
	// ErrCellSyntax indicates a coordinate string that is not "row,col".
	ErrCellSyntax = errors.New("gridgraph: cell must be formatted as \"row,col\"")
)
