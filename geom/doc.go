// Package geom provides the planar geometry used by waypath searches:
// a Coordinate type for intersections and the distance functions that
// double as edge-cost metrics and A* heuristics.
//
// Distance functions:
//
//   - Euclidean: straight-line distance. Admissible for movement in any
//     direction, so it is the default metric and heuristic.
//   - Manhattan: |dx| + |dy|. Admissible only for 4-direction movement.
//   - Diagonal:  octile distance, √2·min(dx,dy) + |dx-dy|. For 8-direction grids.
//   - Zero:      always 0. Turns A* into uniform-cost search.
//
// All functions are pure, O(1) in time and memory, and return a
// non-negative value.
package geom
