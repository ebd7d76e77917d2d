// Package bfs provides breadth-first search over a roadmap.Map, returning
// fewest-road distances, parent links and visit order.
//
// What
//
//   - Explore intersections in non-decreasing number of roads from a start.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex id → number of roads from start
//   - Parent: vertex id → predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual roads via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Reachability: a vertex absent from Depth cannot be reached, so an
//     A* search to it reports no path.
//   - Fewest-hops routes, which can differ from cheapest routes.
//
// Determinism
//
//	Roads are followed in adjacency order, so the visit sequence is fully
//	reproducible for a given Map.
//
// Complexity (V = |Vertices|, E = |Roads|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(m, 8,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(24)
package bfs
