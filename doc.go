// Package gridpath finds shortest hop paths on rectangular grids of open
// and blocked cells.
//
// What is gridpath?
//
//	A small, dependency-light library plus command line tool:
//		• gridgraph  — immutable grids, bounds-safe move checks, fixed neighbor order
//		• gridsearch — breadth-first hop distances and shortest-path reconstruction
//		• fixture    — YAML scenarios (grid, origin, destination)
//		• cmd/gridpath — "solve" and "generate" commands
//
// Movement is orthogonal (right, left, down, up) with unit cost. Every cell
// is either Unreachable or holds its minimum hop count from the origin, and
// one shortest path is recovered by walking the distance field backward.
//
// Quick start:
//
//	g, _ := gridgraph.FromStrings([]string{
//		"___",
//		"_X_",
//		"___",
//	})
//	res, err := gridsearch.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
//	if err != nil {
//		// ErrInvalidOrigin, ErrOutOfBounds, ...
//	}
//	fmt.Println(res.Distance, gridsearch.FormatPath(res.Path))
package gridpath
