package astar_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/gridgraph"
	"github.com/katalvlaran/waypath/roadmap/maptest"
)

func BenchmarkSearch_Map40(b *testing.B) {
	m := maptest.Map40()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(m, 8, 24)
	}
}

func BenchmarkSearch_Map40_UniformCost(b *testing.B) {
	m := maptest.Map40()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(m, 8, 24, astar.WithHeuristic(geom.Zero))
	}
}

func BenchmarkSearch_Grid(b *testing.B) {
	const size = 100
	cells := make([][]int, size)
	for y := range cells {
		cells[y] = make([]int, size)
		for x := range cells[y] {
			cells[y][x] = 1
			if x == size/2 && y > 0 {
				cells[y][x] = 0 // wall with a single gap at the top
			}
		}
	}
	g, err := gridgraph.NewGridGraph(cells, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	m, err := g.ToRoadMap()
	if err != nil {
		b.Fatal(err)
	}
	start, _ := g.Index(0, size-1)
	goal, _ := g.Index(size-1, size-1)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(m, start, goal)
	}
}

func BenchmarkSearchAll_Map40(b *testing.B) {
	m := maptest.Map40()
	var queries []astar.Query
	for _, s := range m.Vertices() {
		for _, g := range m.Vertices() {
			queries = append(queries, astar.Query{Start: s, Goal: g})
		}
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.SearchAll(ctx, m, queries)
	}
}
