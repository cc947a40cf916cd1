// Package gridsearch computes unit-weight shortest hop distances over a
// gridgraph.Grid by breadth-first expansion and reconstructs shortest paths
// from the resulting distance field.
package gridsearch

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates the mutable state of one search invocation.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	queue []queueItem
	res   *DistanceMap
}

// ComputeDistances runs breadth-first search on g from origin, applying any
// number of functional Options. Every cell of the returned map is either
// Unreachable or holds its minimum hop count from origin.
// Returns ErrGridNil, ErrOptionViolation for bad options, ErrInvalidOrigin
// when origin is out of bounds or Blocked, or a wrapped OnVisit hook error.
//
// Neighbors are expanded in the fixed order right, left, down, up.
// Complexity: O(R×C) time and memory.
func ComputeDistances(g *gridgraph.Grid, origin gridgraph.Cell, opts ...Option) (*DistanceMap, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	state, err := g.State(origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrigin, err)
	}
	if state == gridgraph.Blocked {
		return nil, fmt.Errorf("%w: %v is blocked", ErrInvalidOrigin, origin)
	}

	n := g.Rows * g.Cols
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]queueItem, 0, g.OpenCount()),
		res: &DistanceMap{
			origin:  origin,
			rows:    g.Rows,
			cols:    g.Cols,
			dist:    make([]Distance, n),
			blocked: make([]bool, n),
			order:   make([]gridgraph.Cell, 0, g.OpenCount()),
		},
	}
	for i := 0; i < n; i++ {
		w.res.blocked[i] = !g.IsOpen(g.Coordinate(i))
	}

	w.enqueue(origin, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue fixes the distance of c at d, calls OnEnqueue, and appends c to the frontier.
// Callers guarantee c is still unreached, so each cell is written and enqueued once.
func (w *walker) enqueue(c gridgraph.Cell, d int) {
	w.res.dist[w.grid.Index(c)] = Hops(d)
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the frontier until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the frontier head, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// visit records the cell in the expansion order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.order = append(w.res.order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("gridsearch: OnVisit error at %v: %w", item.cell, err)
	}
	return nil
}

// enqueueNeighbors assigns depth+1 to every unreached open neighbor,
// honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.cell) {
		if !w.res.dist[w.grid.Index(nbr)].reached {
			w.enqueue(nbr, next)
		}
	}
}

// IsValidMove reports whether c is within the bounds of g and not Blocked.
// A nil grid has no valid moves.
func IsValidMove(g *gridgraph.Grid, c gridgraph.Cell) bool {
	if g == nil {
		return false
	}
	return g.IsValidMove(c)
}
