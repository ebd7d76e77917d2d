// Package gridgraph treats a 2D grid of cells as a road map, so that
// waypath searches can run on tile worlds as well as on street networks.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable PassableThreshold.
//   - Cells with value ≥ PassableThreshold are walkable; others are walls.
//   - ToRoadMap converts the grid into a *roadmap.Map: one vertex per cell
//     (id = row-major index y*Width+x, coordinate (x, y)) and roads between
//     walkable neighbors under 4- or 8-connectivity.
//   - ConnectedComponents and SameComponent answer reachability questions
//     without running a search.
//
// Which metric to search with:
//
//   - Conn4: geom.Manhattan is an exact, admissible heuristic.
//   - Conn8: geom.Diagonal (octile) is exact for unobstructed moves.
//   - geom.Euclidean is admissible for both.
//
// Complexity:
//
//   - ToRoadMap:           O(W×H×d), Memory: O(W×H×d)   (d = 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    a cell coordinate lies outside the grid.
package gridgraph
