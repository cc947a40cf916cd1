package gridsearch_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// mustGrid builds a grid from text rows or fails the test.
func mustGrid(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromStrings(rows)
	require.NoError(t, err)
	return g
}

// randomGrids yields reproducible random grids with the origin forced open.
func randomGrids(t *testing.T, n int) []*gridgraph.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	out := make([]*gridgraph.Grid, 0, n)
	for i := 0; i < n; i++ {
		rows, cols := 1+rng.Intn(9), 1+rng.Intn(9)
		g, err := gridgraph.Random(rows, cols, gridgraph.DefaultObstacleProbability, rng)
		require.NoError(t, err)
		g, err = g.WithOpen(gridgraph.Cell{})
		require.NoError(t, err)
		out = append(out, g)
	}
	return out
}

func hops(t testing.TB, dm *gridsearch.DistanceMap, c gridgraph.Cell) int {
	t.Helper()
	h, ok := dm.Distance(c).Value()
	require.Truef(t, ok, "%v unexpectedly unreachable", c)
	return h
}

//----------------------------------------------------------------------------//
// ComputeDistances
//----------------------------------------------------------------------------//

// TestComputeDistances_OpenGrid checks Manhattan distances on an obstacle-free grid.
func TestComputeDistances_OpenGrid(t *testing.T) {
	g, err := gridgraph.NewOpen(5, 5)
	require.NoError(t, err)

	dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{})
	require.NoError(t, err)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			assert.Equal(t, r+c, hops(t, dm, gridgraph.Cell{Row: r, Col: c}))
		}
	}
	assert.Equal(t, 5, hops(t, dm, gridgraph.Cell{Row: 4, Col: 1}))
	assert.Equal(t, 25, dm.Reachable())
	assert.Equal(t, gridgraph.Cell{}, dm.Origin())
	assert.Equal(t, 5, dm.Rows())
	assert.Equal(t, 5, dm.Cols())
}

// TestComputeDistances_InvalidOrigin covers blocked and out-of-bounds origins.
func TestComputeDistances_InvalidOrigin(t *testing.T) {
	g := mustGrid(t,
		"X__",
		"___",
	)
	cases := []struct {
		name   string
		origin gridgraph.Cell
		oob    bool
	}{
		{"Blocked", gridgraph.Cell{Row: 0, Col: 0}, false},
		{"NegativeRow", gridgraph.Cell{Row: -1, Col: 1}, true},
		{"ColTooLarge", gridgraph.Cell{Row: 1, Col: 3}, true},
		{"RowTooLarge", gridgraph.Cell{Row: 2, Col: 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dm, err := gridsearch.ComputeDistances(g, tc.origin)
			assert.Nil(t, dm)
			assert.ErrorIs(t, err, gridsearch.ErrInvalidOrigin)
			assert.Equal(t, tc.oob, errors.Is(err, gridsearch.ErrOutOfBounds))
		})
	}

	_, err := gridsearch.ComputeDistances(nil, gridgraph.Cell{})
	assert.ErrorIs(t, err, gridsearch.ErrGridNil)
}

// TestComputeDistances_Enclosed marks a walled-in cell and blocked cells unreachable.
func TestComputeDistances_Enclosed(t *testing.T) {
	g := mustGrid(t,
		"_____",
		"__X__",
		"_X_X_",
		"__X__",
	)
	dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{})
	require.NoError(t, err)

	assert.False(t, dm.Distance(gridgraph.Cell{Row: 2, Col: 2}).Reachable())
	assert.False(t, dm.Distance(gridgraph.Cell{Row: 1, Col: 2}).Reachable())
	assert.False(t, dm.Distance(gridgraph.Cell{Row: 9, Col: 9}).Reachable())
	assert.Equal(t, g.OpenCount()-1, dm.Reachable())

	_, err = dm.At(gridgraph.Cell{Row: 4, Col: 0})
	assert.ErrorIs(t, err, gridsearch.ErrOutOfBounds)
}

// TestComputeDistances_Detour checks that walls force a longer route.
func TestComputeDistances_Detour(t *testing.T) {
	g := mustGrid(t,
		"_X_",
		"_X_",
		"___",
	)
	dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{})
	require.NoError(t, err)
	assert.Equal(t, 6, hops(t, dm, gridgraph.Cell{Row: 0, Col: 2}))
	assert.Equal(t, "[0 X 6]\n[1 X 5]\n[2 3 4]\n", dm.String())
}

// TestDistanceMap_String renders blocked, unreachable, and reached cells.
func TestDistanceMap_String(t *testing.T) {
	g := mustGrid(t, "__X_")
	dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, "[1 0 X _]\n", dm.String())
}

//----------------------------------------------------------------------------//
// Properties over random grids
//----------------------------------------------------------------------------//

// TestProperty_OriginDistance: the origin is always at distance 0.
func TestProperty_OriginDistance(t *testing.T) {
	for _, g := range randomGrids(t, 50) {
		dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{})
		require.NoError(t, err)
		assert.Equal(t, gridsearch.Hops(0), dm.Distance(gridgraph.Cell{}))
	}
}

// TestProperty_Layering: every reached cell but the origin sits exactly one hop
// beyond its closest reached neighbor.
func TestProperty_Layering(t *testing.T) {
	for _, g := range randomGrids(t, 50) {
		dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{})
		require.NoError(t, err)

		for i := 0; i < g.Rows*g.Cols; i++ {
			c := g.Coordinate(i)
			d, ok := dm.Distance(c).Value()
			if !ok || c == dm.Origin() {
				continue
			}
			best := -1
			for _, n := range g.Neighbors(c) {
				if h, ok := dm.Distance(n).Value(); ok && (best < 0 || h < best) {
					best = h
				}
			}
			require.GreaterOrEqual(t, best, 0, "reached cell %v has no reached neighbor", c)
			assert.Equal(t, best+1, d, "cell %v\n%s", c, dm)
		}
	}
}

// TestProperty_Unreachability: a cell is unreachable iff it is blocked or lies
// in another connected region than the origin.
func TestProperty_Unreachability(t *testing.T) {
	for _, g := range randomGrids(t, 50) {
		dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{})
		require.NoError(t, err)

		home := g.ComponentOf(gridgraph.Cell{})
		for i := 0; i < g.Rows*g.Cols; i++ {
			c := g.Coordinate(i)
			connected := g.IsOpen(c) && g.ComponentOf(c) == home
			assert.Equal(t, connected, dm.Distance(c).Reachable(), "cell %v\n%s", c, g)
		}
	}
}

// TestProperty_PathValidity: reconstructed paths start at the origin, end at
// the destination, move one orthogonal step at a time through open cells, and
// have length distance+1.
func TestProperty_PathValidity(t *testing.T) {
	for _, g := range randomGrids(t, 50) {
		origin := gridgraph.Cell{}
		dm, err := gridsearch.ComputeDistances(g, origin)
		require.NoError(t, err)

		for i := 0; i < g.Rows*g.Cols; i++ {
			dest := g.Coordinate(i)
			path, err := gridsearch.ReconstructPath(g, dm, origin, dest)
			d, ok := dm.Distance(dest).Value()
			if !ok {
				assert.ErrorIs(t, err, gridsearch.ErrUnreachable)
				assert.Nil(t, path)
				continue
			}
			require.NoError(t, err)
			require.Len(t, path, d+1)
			assert.Equal(t, origin, path[0])
			assert.Equal(t, dest, path[len(path)-1])
			for k := 1; k < len(path); k++ {
				dr, dc := path[k].Row-path[k-1].Row, path[k].Col-path[k-1].Col
				assert.Equal(t, 1, abs(dr)+abs(dc), "non-orthogonal step %v->%v", path[k-1], path[k])
				assert.True(t, g.IsValidMove(path[k]))
				assert.Equal(t, k, hops(t, dm, path[k]))
			}
		}
	}
}

// TestProperty_Determinism: repeated searches on one grid yield identical maps.
func TestProperty_Determinism(t *testing.T) {
	for _, g := range randomGrids(t, 20) {
		a, err := gridsearch.ComputeDistances(g, gridgraph.Cell{})
		require.NoError(t, err)
		b, err := gridsearch.ComputeDistances(g, gridgraph.Cell{})
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

// TestIsValidMove rejects out-of-range coordinates, blocked cells, and nil grids.
func TestIsValidMove(t *testing.T) {
	g := mustGrid(t, "_X", "__")
	assert.True(t, gridsearch.IsValidMove(g, gridgraph.Cell{Row: 1, Col: 1}))
	assert.False(t, gridsearch.IsValidMove(g, gridgraph.Cell{Row: 0, Col: 1}))
	assert.False(t, gridsearch.IsValidMove(g, gridgraph.Cell{Row: -1, Col: 0}))
	assert.False(t, gridsearch.IsValidMove(g, gridgraph.Cell{Row: 0, Col: -1}))
	assert.False(t, gridsearch.IsValidMove(g, gridgraph.Cell{Row: 2, Col: 0}))
	assert.False(t, gridsearch.IsValidMove(g, gridgraph.Cell{Row: 0, Col: 2}))
	assert.False(t, gridsearch.IsValidMove(nil, gridgraph.Cell{}))
}

//----------------------------------------------------------------------------//
// Options and hooks
//----------------------------------------------------------------------------//

// TestHooks checks hook invocation counts and the non-decreasing visit order.
func TestHooks(t *testing.T) {
	g, err := gridgraph.NewOpen(3, 4)
	require.NoError(t, err)

	var enq, deq int
	last := 0
	dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{Row: 1, Col: 1},
		gridsearch.WithOnEnqueue(func(gridgraph.Cell, int) { enq++ }),
		gridsearch.WithOnDequeue(func(gridgraph.Cell, int) { deq++ }),
		gridsearch.WithOnVisit(func(_ gridgraph.Cell, d int) error {
			if d < last {
				t.Errorf("visit depth %d after %d", d, last)
			}
			last = d
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 12, enq)
	assert.Equal(t, 12, deq)
	assert.Len(t, dm.Order(), 12)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 1}, dm.Order()[0])
}

// TestHooks_VisitError aborts the search and wraps the hook error.
func TestHooks_VisitError(t *testing.T) {
	g, err := gridgraph.NewOpen(3, 3)
	require.NoError(t, err)
	stop := errors.New("stop")

	dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{},
		gridsearch.WithOnVisit(func(c gridgraph.Cell, d int) error {
			if d == 2 {
				return stop
			}
			return nil
		}),
	)
	assert.Nil(t, dm)
	assert.ErrorIs(t, err, stop)
}

// TestMaxDepth bounds the search radius and rejects negative values.
func TestMaxDepth(t *testing.T) {
	g, err := gridgraph.NewOpen(1, 5)
	require.NoError(t, err)

	dm, err := gridsearch.ComputeDistances(g, gridgraph.Cell{}, gridsearch.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, "[0 1 2 _ _]\n", dm.String())

	dm, err = gridsearch.ComputeDistances(g, gridgraph.Cell{}, gridsearch.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 5, dm.Reachable())

	_, err = gridsearch.ComputeDistances(g, gridgraph.Cell{}, gridsearch.WithMaxDepth(-1))
	assert.ErrorIs(t, err, gridsearch.ErrOptionViolation)
}

// TestDistance covers the tagged distance value.
func TestDistance(t *testing.T) {
	var zero gridsearch.Distance
	assert.Equal(t, gridsearch.Unreachable(), zero)
	assert.False(t, zero.Reachable())
	assert.Equal(t, "unreachable", zero.String())

	h, ok := gridsearch.Hops(0).Value()
	assert.True(t, ok)
	assert.Equal(t, 0, h)
	assert.NotEqual(t, gridsearch.Unreachable(), gridsearch.Hops(0))
	assert.Equal(t, "7", gridsearch.Hops(7).String())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
