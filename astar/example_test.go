package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/roadmap"
	"github.com/katalvlaran/waypath/roadmap/maptest"
)

// ExampleSearch finds the shortest route across a small square with one
// diagonal shortcut.
func ExampleSearch() {
	m, _ := roadmap.FromSlices(
		[]geom.Coordinate{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 4}},
		[][]int{{1, 2}, {2}, {3}, {0}},
	)

	res, err := astar.Search(m, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s path=%v cost=%.1f\n", res.Status, res.Path, res.Cost)
	// Output: found path=[0 2 3] cost=8.0
}

// ExampleSearch_noPath shows that an unreachable goal is a status, not an
// error.
func ExampleSearch_noPath() {
	m, _ := roadmap.FromSlices(
		[]geom.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[][]int{{}, {0}},
	)

	res, err := astar.Search(m, 0, 1)
	fmt.Println(res.Status, err, res.Err())
	// Output: no-path <nil> astar: no path between start and goal
}

// ExampleSearchAll runs several queries on the reference map.
func ExampleSearchAll() {
	queries := []astar.Query{{Start: 8, Goal: 24}, {Start: 5, Goal: 5}}
	results, err := astar.SearchAll(context.Background(), maptest.Map40(), queries)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, r := range results {
		fmt.Printf("%d→%d %v\n", queries[i].Start, queries[i].Goal, r.Path)
	}
	// Output:
	// 8→24 [8 14 16 37 12 17 10 24]
	// 5→5 [5]
}
