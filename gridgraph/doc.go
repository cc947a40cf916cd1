// Package gridgraph treats a rectangular field of Open and Blocked cells as
// an unweighted graph with orthogonal edges.
//
// What:
//
//   - Grid wraps a row-major set of open flags with fixed dimensions.
//   - Builds from [][]int (value ≥ OpenThreshold is Open), text rows, or at random.
//   - Validates moves (IsValidMove) without ever indexing outside the grid.
//   - Enumerates neighbors in a fixed order: right, left, down, up.
//   - Identifies connected regions of Open cells.
//
// Why:
//
//   - Mazes and game maps: feed gridsearch with a validated, immutable field.
//   - Reachability checks: two cells are mutually reachable iff they share a region.
//
// Complexity:
//
//   - NewGrid / FromStrings / Random: O(R×C), Memory: O(R×C).
//   - InBounds / IsValidMove / State:  O(1).
//   - ConnectedComponents:             O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid dimensions.
//   - ErrInvalidGlyph: unknown character in a text row.
//   - ErrObstacleProbability: Random probability outside [0,1].
//   - ErrCellSyntax: ParseCell input is not "row,col".
package gridgraph
