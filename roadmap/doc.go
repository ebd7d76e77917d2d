// Package roadmap provides the immutable road/intersection graph that
// waypath searches run on.
//
// A Map holds two tables:
//
//   - vertex id → geom.Coordinate (the intersection's position)
//   - vertex id → neighbor ids    (roads leaving the intersection)
//
// Vertex ids are non-negative integers. Adjacency may be asymmetric
// (one-way roads) and may contain self-loops; searches skip those.
// Every id that appears in an adjacency list must also have a coordinate,
// which NewMap verifies once so searches never meet a dangling id.
//
// Maps are immutable after construction and carry no locks: any number of
// goroutines may read the same Map concurrently.
//
// Building a Map:
//
//	m, err := roadmap.NewMap(
//	    map[int]geom.Coordinate{0: {X: 0, Y: 0}, 1: {X: 1, Y: 0}},
//	    map[int][]int{0: {1}, 1: {0}},
//	)
//
// or from an external description (YAML, JSON is accepted as well):
//
//	intersections:
//	  0: [0.0, 0.0]
//	  1: [1.0, 0.0]
//	roads:
//	  0: [1]
//	  1: [0]
//
// via Decode or LoadFile.
//
// Errors:
//
//   - ErrUnknownVertex:    id has no coordinate entry.
//   - ErrNegativeVertex:   a negative id was supplied at construction.
//   - ErrDanglingNeighbor: an adjacency list references an id with no coordinate.
//   - ErrNotAnEdge:        PathCost was given two consecutive ids that are not connected.
//   - ErrBadDescription:   a map description could not be parsed.
package roadmap
