// Package dijkstra computes single-source shortest distances over a
// roadmap.Map, using a geometric metric as edge cost.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source to every
//     reachable vertex in O((V + E) log V) time.
//   - It relies on a min-heap with the “lazy decrease-key” strategy: a
//     cheaper distance pushes a new heap entry and stale entries are
//     skipped when popped.
//   - It is the exhaustive counterpart of package astar: running astar with
//     the zero heuristic must yield exactly the distances computed here.
//
// Options:
//
//   - Source(id):              required, the starting vertex.
//   - WithReturnPath():        also return the predecessor map.
//   - WithMetric(f):           edge-cost metric (default geom.Euclidean).
//   - WithMaxDistance(d):      do not explore beyond distance d.
//   - WithInfEdgeThreshold(t): treat edges costing ≥ t as impassable.
//
// Errors (sentinel):
//
//   - ErrNoSource:        Source was not given.
//   - ErrNilMap:          the map is nil.
//   - ErrVertexNotFound:  the source is not in the map.
//   - ErrNegativeCost:    the metric returned a negative cost for some edge.
//   - ErrBadMaxDistance:  WithMaxDistance with a negative value (panics).
//   - ErrBadInfThreshold: WithInfEdgeThreshold with a value ≤ 0 (panics).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(8), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok := dijkstra.PathTo(prev, 8, 24)
package dijkstra
