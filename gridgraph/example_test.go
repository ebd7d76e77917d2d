package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/gridgraph"
)

// ExampleGridGraph_ToRoadMap routes across a small maze with
// 4-connectivity and the Manhattan metric.
//
//	S . #
//	# . #
//	# . G
func ExampleGridGraph_ToRoadMap() {
	grid := [][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 1, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	m, _ := gg.ToRoadMap()

	start, _ := gg.Index(0, 0)
	goal, _ := gg.Index(2, 2)
	res, err := astar.Search(m, start, goal, astar.WithMetric(geom.Manhattan))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Path {
		x, y := gg.Coordinate(id)
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Printf("cost=%.0f\n", res.Cost)
	// Output: (0,0) (1,0) (1,1) (1,2) (2,2) cost=4
}
