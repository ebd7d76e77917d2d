package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/roadmap"
	"github.com/katalvlaran/waypath/roadmap/maptest"
)

// chain builds 0→1→2→3 plus an isolated vertex 4 and a self-loop on 2.
func chain(t *testing.T) *roadmap.Map {
	t.Helper()
	m, err := roadmap.FromSlices(
		[]geom.Coordinate{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 9}},
		[][]int{{1}, {2}, {2, 3}, {}},
	)
	require.NoError(t, err)

	return m
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrMapNil)

	m := chain(t)
	_, err = bfs.BFS(m, 42)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(m, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Chain(t *testing.T) {
	res, err := bfs.BFS(chain(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 3}, res.Depth)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 2}, res.Parent)
	assert.False(t, res.Reached(4))

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_OneWayRoads(t *testing.T) {
	res, err := bfs.BFS(chain(t), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(maptest.Map40(), 8, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{8, 33, 30, 14}, res.Order)

	res, err = bfs.BFS(maptest.Map40(), 8, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 40)
}

func TestBFS_Filter(t *testing.T) {
	res, err := bfs.BFS(chain(t), 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 1 && nbr == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestBFS_Hooks(t *testing.T) {
	var enq, deq []int
	res, err := bfs.BFS(chain(t), 0,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, enq)
	assert.Equal(t, res.Order, deq)

	stop := errors.New("stop")
	res, err = bfs.BFS(chain(t), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(t), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_Map40(t *testing.T) {
	m := maptest.Map40()
	res, err := bfs.BFS(m, 8)
	require.NoError(t, err)

	path, err := res.PathTo(24)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 30, 16, 37, 12, 31, 10, 24}, path)
	assert.Equal(t, 7, res.Depth[24])

	// The cheapest route uses as many roads as the fewest-roads one here.
	route, err := astar.Search(m, 8, 24)
	require.NoError(t, err)
	assert.Len(t, route.Path, len(path))
}

// A* finds a path exactly when BFS reaches the goal.
func TestBFS_AgreesWithAStarReachability(t *testing.T) {
	m, err := roadmap.FromSlices(
		[]geom.Coordinate{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}},
		[][]int{{1, 2}, {3}, {1}, {}, {5}, {4}},
	)
	require.NoError(t, err)

	for _, s := range m.Vertices() {
		reach, err := bfs.BFS(m, s)
		require.NoError(t, err)
		for _, g := range m.Vertices() {
			res, err := astar.Search(m, s, g)
			require.NoError(t, err)
			assert.Equal(t, reach.Reached(g), res.Found(), "%d→%d", s, g)
		}
	}
}
