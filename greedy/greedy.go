// Package greedy implements a non-backtracking greedy route search over a
// roadmap.Map.
//
// From the current intersection the search always moves to the unvisited
// neighbor n minimising cost(current, n) + estimate(n, goal), and never
// revisits or backs out of a choice. It is fast and often close to
// optimal, but it can miss the goal entirely at a dead end and it gives
// no optimality guarantee. It exists as a baseline for astar: on the same
// map an A* route is never more expensive than a greedy one.
//
// Complexity: O(V + E) time, O(V) space.
package greedy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/roadmap"
)

// Sentinel errors for greedy search.
var (
	// ErrNilMap is returned when a nil *roadmap.Map is passed.
	ErrNilMap = errors.New("greedy: map is nil")

	// ErrUnknownVertex is returned when start or goal is not in the map.
	ErrUnknownVertex = errors.New("greedy: vertex not in map")
)

// Result holds a greedy route. Found is false when the walk hit a dead
// end; Path then holds the partial walk and Cost its length.
type Result struct {
	Path  []int
	Cost  float64
	Found bool
}

// Search walks greedily from start towards goal. metric is used both as
// the step cost and as the remaining-distance estimate; nil selects
// geom.Euclidean.
func Search(m *roadmap.Map, start, goal int, metric geom.Func) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMap
	}
	if metric == nil {
		metric = geom.Euclidean
	}
	goalXY, err := m.Coordinate(goal)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnknownVertex, err)
	}
	curXY, err := m.Coordinate(start)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnknownVertex, err)
	}

	res := Result{Path: []int{start}}
	visited := map[int]bool{start: true}
	for cur := start; cur != goal; {
		next, best := -1, 0.0
		var nextXY geom.Coordinate
		err = m.EachNeighbor(cur, func(n int) bool {
			if visited[n] {
				return true
			}
			xy, _ := m.Coordinate(n)
			score := metric(curXY, xy) + metric(xy, goalXY)
			if next < 0 || score < best {
				next, best, nextXY = n, score, xy
			}
			return true
		})
		if err != nil {
			return Result{}, err
		}
		if next < 0 {
			return res, nil
		}

		res.Cost += metric(curXY, nextXY)
		res.Path = append(res.Path, next)
		visited[next] = true
		cur, curXY = next, nextXY
	}
	res.Found = true

	return res, nil
}
