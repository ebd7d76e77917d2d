package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/gridgraph"
)

// ExampleBFS shows BFS layering on an open 3×3 grid; cell (x,y) has id y*3+x.
func ExampleBFS() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, gridgraph.DefaultGridOptions())
	m, _ := gg.ToRoadMap()

	res, err := bfs.BFS(m, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, res.Depth[8])
	// Output: [0 1 3 2 4 6 5 7 8] 4
}
