package gridsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ReconstructPath walks the distance field backward from destination to origin
// and returns one shortest path, origin first and destination last.
//
// From a cell at distance d the walk moves to the first neighbor, in the same
// right, left, down, up order used for expansion, whose distance is d-1.
// BFS guarantees such a neighbor exists for every reached cell but the origin.
//
// Returns ErrGridNil, ErrOutOfBounds for coordinates outside g, ErrGridMismatch
// if dm belongs to a grid of other dimensions, ErrUnreachable if destination
// is Blocked or was never reached, and ErrOriginMismatch if the walk ends at
// a zero-distance cell other than origin.
// Complexity: O(d) where d is the destination distance.
func ReconstructPath(g *gridgraph.Grid, dm *DistanceMap, origin, destination gridgraph.Cell) ([]gridgraph.Cell, error) {
	if g == nil || dm == nil {
		return nil, ErrGridNil
	}
	for _, c := range []gridgraph.Cell{origin, destination} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
		}
	}
	if dm.rows != g.Rows || dm.cols != g.Cols {
		return nil, fmt.Errorf("%w: map %dx%d, grid %dx%d", ErrGridMismatch, dm.rows, dm.cols, g.Rows, g.Cols)
	}
	if !g.IsValidMove(destination) {
		return nil, fmt.Errorf("%w: %v is blocked", ErrUnreachable, destination)
	}
	d, ok := dm.Distance(destination).Value()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, destination)
	}

	path := make([]gridgraph.Cell, 0, d+1)
	cur := destination
	for ; d > 0; d-- {
		path = append(path, cur)
		next, found := stepBack(g, dm, cur, d-1)
		if !found {
			// Only a map that was not produced by BFS on g can break the chain.
			return nil, fmt.Errorf("%w: no neighbor of %v at distance %d", ErrGridMismatch, cur, d-1)
		}
		cur = next
	}
	if cur != origin {
		return nil, fmt.Errorf("%w: walk ended at %v, want %v", ErrOriginMismatch, cur, origin)
	}
	path = append(path, cur)

	// reverse to get origin → destination
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// stepBack returns the first neighbor of c whose distance equals want.
func stepBack(g *gridgraph.Grid, dm *DistanceMap, c gridgraph.Cell, want int) (gridgraph.Cell, bool) {
	for _, nbr := range g.Neighbors(c) {
		if h, ok := dm.Distance(nbr).Value(); ok && h == want {
			return nbr, true
		}
	}
	return gridgraph.Cell{}, false
}

// Search computes distances from origin and reconstructs one shortest path to
// destination. An unreachable destination is a valid outcome, not an error:
// Result.Distance is Unreachable and Result.Path is nil.
// Errors from ComputeDistances are returned as is; destination outside g
// yields ErrOutOfBounds.
func Search(g *gridgraph.Grid, origin, destination gridgraph.Cell, opts ...Option) (*Result, error) {
	dm, err := ComputeDistances(g, origin, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{Distances: dm, Destination: destination}

	path, err := ReconstructPath(g, dm, origin, destination)
	switch {
	case errors.Is(err, ErrUnreachable):
		return res, nil
	case err != nil:
		return nil, err
	}
	res.Path = path
	res.Distance = dm.Distance(destination)

	return res, nil
}

// FormatPath renders a path as "(r, c)->(r, c)->...".
func FormatPath(path []gridgraph.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, "->")
}
