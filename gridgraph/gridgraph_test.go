package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph, InBounds and Index
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_Copies verifies the input grid is deep-copied.
func TestNewGridGraph_Copies(t *testing.T) {
	grid := [][]int{{1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	grid[0][1] = 0
	assert.True(t, gg.Passable(1, 0))
}

// TestInBoundsAndIndex checks bounds, passability and id conversion on a 3×2 grid.
func TestInBoundsAndIndex(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%v)", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%v)", xy)
	}
	assert.True(t, gg.Passable(1, 0))
	assert.False(t, gg.Passable(0, 0))
	assert.False(t, gg.Passable(5, 5))

	idx, err := gg.Index(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
	x, y := gg.Coordinate(idx)
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})

	_, err = gg.Index(3, 0)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// ToRoadMap
//----------------------------------------------------------------------------//

// TestToRoadMap_Conn4 verifies that only orthogonal roads exist under Conn4
// and that walls keep their coordinate but get no roads.
func TestToRoadMap_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	m, err := gg.ToRoadMap()
	require.NoError(t, err)

	assert.Equal(t, 4, m.Len())
	assert.True(t, m.HasEdge(0, 2))
	assert.True(t, m.HasEdge(2, 3))
	assert.True(t, m.HasEdge(3, 2))
	assert.False(t, m.HasEdge(0, 3), "no diagonal under Conn4")
	assert.False(t, m.HasEdge(0, 1), "no road into a wall")

	c, err := m.Coordinate(1)
	require.NoError(t, err)
	assert.Equal(t, geom.Coordinate{X: 1, Y: 0}, c)
	nbrs, err := m.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

// TestToRoadMap_Conn8_Corners verifies the corner-cutting rule.
func TestToRoadMap_Conn8_Corners(t *testing.T) {
	grid := [][]int{{1, 0}, {0, 1}}

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	m, err := gg.ToRoadMap()
	require.NoError(t, err)
	assert.False(t, m.HasEdge(0, 3), "diagonal between two walls is blocked")

	opts.CutCorners = true
	gg, err = gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	m, err = gg.ToRoadMap()
	require.NoError(t, err)
	assert.True(t, m.HasEdge(0, 3))
	assert.True(t, m.HasEdge(3, 0))
}

//----------------------------------------------------------------------------//
// Searching grids
//----------------------------------------------------------------------------//

// TestSearch_Conn4_Detour routes around a wall with the Manhattan metric.
//
//	S 1 1 1
//	0 0 0 1
//	G 1 1 1
func TestSearch_Conn4_Detour(t *testing.T) {
	grid := [][]int{
		{1, 1, 1, 1},
		{0, 0, 0, 1},
		{1, 1, 1, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	m, err := gg.ToRoadMap()
	require.NoError(t, err)

	start, _ := gg.Index(0, 0)
	goal, _ := gg.Index(0, 2)
	res, err := astar.Search(m, start, goal, astar.WithMetric(geom.Manhattan))
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.InDelta(t, 8.0, res.Cost, 1e-12)
	assert.Equal(t, []int{0, 1, 2, 3, 7, 11, 10, 9, 8}, res.Path)
}

// TestSearch_Conn8_Octile checks that on an open grid the cost equals the
// octile distance.
func TestSearch_Conn8_Octile(t *testing.T) {
	grid := make([][]int, 5)
	for y := range grid {
		grid[y] = []int{1, 1, 1, 1, 1}
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	m, err := gg.ToRoadMap()
	require.NoError(t, err)

	start, _ := gg.Index(0, 0)
	goal, _ := gg.Index(4, 2)
	res, err := astar.Search(m, start, goal, astar.WithMetric(geom.Diagonal))
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.InDelta(t, 2*math.Sqrt2+2, res.Cost, 1e-9)
	assert.Len(t, res.Path, 5)
}

// TestSearch_Walls checks that walls are known vertices without a path.
func TestSearch_Walls(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	m, err := gg.ToRoadMap()
	require.NoError(t, err)

	for _, q := range [][2]int{{0, 2}, {0, 1}, {1, 2}} {
		res, err := astar.Search(m, q[0], q[1])
		require.NoError(t, err)
		assert.Equal(t, astar.StatusNoPath, res.Status, "query %v", q)
		assert.Equal(t, gg.SameComponent(q[0], q[1]), res.Found())
	}
}
