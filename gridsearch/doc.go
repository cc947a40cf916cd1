// Package gridsearch provides breadth-first shortest paths over a gridgraph.Grid,
// returning unit-weight hop distances for every cell and one reconstructed path.
//
// What
//
//   - ComputeDistances expands from an origin in non-decreasing distance order
//     and returns a DistanceMap: every cell is Unreachable or holds its hop count.
//   - ReconstructPath walks the distance field backward from a destination,
//     always stepping to the first neighbor exactly one hop closer.
//   - Search combines both and treats an unreachable destination as a result.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithMaxDepth bounds the search radius.
//
// Determinism
//
//	Neighbors are visited in the fixed order right, left, down, up, both when
//	expanding and when walking back. When several shortest paths exist, the
//	one returned is therefore always the same; from (0,0) to (4,1) on an open
//	5×5 grid it is (0, 0)->(1, 0)->(2, 0)->(3, 0)->(4, 0)->(4, 1).
//
// Invariants
//
//   - The origin's distance is 0.
//   - A cell's distance is written once and never changes; a cell is enqueued at most once.
//   - Blocked cells are never visited and stay Unreachable.
//   - Every call owns its own frontier and DistanceMap; nothing is shared
//     between invocations, so one Grid may serve many searches.
//
// Complexity (R×C grid)
//
//   - ComputeDistances: O(R×C) time and memory.
//   - ReconstructPath:  O(d) for a destination at distance d.
//
// Usage
//
//	dm, err := gridsearch.ComputeDistances(g, origin)
//	if err != nil {
//	    // ErrGridNil, ErrInvalidOrigin, ErrOptionViolation or a hook error
//	}
//	path, err := gridsearch.ReconstructPath(g, dm, origin, dest)
//	if errors.Is(err, gridsearch.ErrUnreachable) {
//	    // no path
//	}
//	fmt.Println(gridsearch.FormatPath(path))
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrInvalidOrigin    if the origin is out of bounds or Blocked.
//   - ErrUnreachable      if the destination is Blocked or was never reached.
//   - ErrOutOfBounds      for coordinates outside the grid.
//   - ErrGridMismatch     if a DistanceMap is paired with a grid of other dimensions.
//   - ErrOriginMismatch   if a DistanceMap was computed from another origin.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package gridsearch
