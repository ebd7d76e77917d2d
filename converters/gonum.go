package converters

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/roadmap"
)

// ErrNilMap is returned when a nil *roadmap.Map is passed.
var ErrNilMap = errors.New("converters: map is nil")

// ToGonum converts m into a gonum weighted directed graph. Node ids equal
// vertex ids and every road u→v becomes an edge weighted metric(u, v)
// (geom.Euclidean when metric is nil). gonum simple graphs cannot hold
// self-loops or parallel edges, so self-loops are dropped and repeated
// roads collapse into one edge.
//
// Complexity: O(V + E).
func ToGonum(m *roadmap.Map, metric geom.Func) (*simple.WeightedDirectedGraph, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if metric == nil {
		metric = geom.Euclidean
	}

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, id := range m.Vertices() {
		g.AddNode(simple.Node(int64(id)))
	}
	for _, u := range m.Vertices() {
		from, _ := m.Coordinate(u)
		err := m.EachNeighbor(u, func(v int) bool {
			if v == u {
				return true
			}
			to, _ := m.Coordinate(v)
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(int64(u)), simple.Node(int64(v)), metric(from, to)))
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Heuristic adapts a geom.Func into a gonum path heuristic over the
// vertices of m, for use with gonum's path.AStar. Unknown nodes estimate 0.
func Heuristic(m *roadmap.Map, metric geom.Func) func(x, y graph.Node) float64 {
	if metric == nil {
		metric = geom.Euclidean
	}

	return func(x, y graph.Node) float64 {
		a, errA := m.Coordinate(int(x.ID()))
		b, errB := m.Coordinate(int(y.ID()))
		if errA != nil || errB != nil {
			return 0
		}

		return metric(a, b)
	}
}

// NodeIDs converts a gonum node path back to vertex ids.
func NodeIDs(nodes []graph.Node) []int {
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = int(n.ID())
	}

	return ids
}
