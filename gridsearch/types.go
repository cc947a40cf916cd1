// Package gridsearch provides tunable options, result types, and error
// definitions for breadth-first search over a gridgraph.Grid.
package gridsearch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for grid search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("gridsearch: grid is nil")

	// ErrInvalidOrigin is returned when the origin is out of bounds or Blocked.
	ErrInvalidOrigin = errors.New("gridsearch: origin must be an open cell within the grid")

	// ErrUnreachable is returned when the destination has no finite distance.
	ErrUnreachable = errors.New("gridsearch: destination unreachable")

	// ErrOutOfBounds is returned for coordinates outside the grid dimensions.
	ErrOutOfBounds = gridgraph.ErrOutOfBounds

	// ErrGridMismatch is returned when a DistanceMap is used with a grid of other dimensions.
	ErrGridMismatch = errors.New("gridsearch: distance map does not match grid dimensions")

	// ErrOriginMismatch is returned when a path walk ends at a zero-distance
	// cell other than the requested origin.
	ErrOriginMismatch = errors.New("gridsearch: distance map was computed from a different origin")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridsearch: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// OnEnqueue is called when a cell is assigned its distance and appended to the frontier.
	OnEnqueue func(c gridgraph.Cell, depth int)

	// OnDequeue is called when a cell is popped from the frontier head.
	OnDequeue func(c gridgraph.Cell, depth int)

	// OnVisit is called when expanding a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c gridgraph.Cell, depth int) error

	// MaxDepth, if > 0, stops assigning distances beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(gridgraph.Cell, int) {},
		OnDequeue: func(gridgraph.Cell, int) {},
		OnVisit:   func(gridgraph.Cell, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search radius.
//
//	d > 0: cells farther than d hops stay unreachable
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Distance is either Unreachable or a hop count from the origin.
// The zero value is Unreachable, so an unvisited cell can never read as distance 0.
type Distance struct {
	hops    int
	reached bool
}

// Unreachable returns the Distance of a cell with no path from the origin.
func Unreachable() Distance { return Distance{} }

// Hops returns the Distance of a cell n moves away from the origin.
func Hops(n int) Distance { return Distance{hops: n, reached: true} }

// Reachable reports whether d holds a hop count.
func (d Distance) Reachable() bool { return d.reached }

// Value returns the hop count and true, or 0 and false when unreachable.
func (d Distance) Value() (int, bool) { return d.hops, d.reached }

// String returns the hop count or "unreachable".
func (d Distance) String() string {
	if !d.reached {
		return "unreachable"
	}
	return strconv.Itoa(d.hops)
}

// DistanceMap holds the outcome of ComputeDistances: the shortest hop
// distance from one origin to every cell of a grid. It is read-only.
type DistanceMap struct {
	origin     gridgraph.Cell
	rows, cols int
	dist       []Distance // row-major
	blocked    []bool
	order      []gridgraph.Cell
}

// Origin returns the cell the distances were computed from.
func (m *DistanceMap) Origin() gridgraph.Cell { return m.origin }

// Rows returns the number of grid rows.
func (m *DistanceMap) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *DistanceMap) Cols() int { return m.cols }

// Order returns the cells in the order they were expanded (non-decreasing distance).
func (m *DistanceMap) Order() []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(m.order))
	copy(out, m.order)
	return out
}

// At returns the distance of c, or ErrOutOfBounds.
func (m *DistanceMap) At(c gridgraph.Cell) (Distance, error) {
	if !m.inBounds(c) {
		return Unreachable(), fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, m.rows, m.cols)
	}
	return m.dist[c.Row*m.cols+c.Col], nil
}

// Distance returns the distance of c; out-of-bounds cells are Unreachable.
func (m *DistanceMap) Distance(c gridgraph.Cell) Distance {
	d, _ := m.At(c)
	return d
}

// Reachable returns the number of cells with a finite distance, origin included.
func (m *DistanceMap) Reachable() int {
	return len(m.order)
}

// String renders the map one bracketed row per line: hop counts for reached
// cells, '_' for unreachable open cells and 'X' for blocked cells.
func (m *DistanceMap) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			i := r*m.cols + c
			switch {
			case m.blocked[i]:
				sb.WriteByte(gridgraph.GlyphBlocked)
			case !m.dist[i].reached:
				sb.WriteByte(gridgraph.GlyphOpen)
			default:
				sb.WriteString(strconv.Itoa(m.dist[i].hops))
			}
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

func (m *DistanceMap) inBounds(c gridgraph.Cell) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

// Result pairs the destination distance with one shortest path.
// Path is nil when the destination is unreachable.
type Result struct {
	Distances   *DistanceMap
	Destination gridgraph.Cell
	Distance    Distance
	Path        []gridgraph.Cell
}
