package maptest

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/roadmap"
)

// Sentinel errors for the random map generators.
var (
	ErrTooFewVertices     = errors.New("maptest: too few vertices")
	ErrInvalidProbability = errors.New("maptest: probability must be in [0,1]")
	ErrNeedRandSource     = errors.New("maptest: rng is required")
)

// RandomSparse samples a road map over n intersections placed uniformly in
// the unit square. Each ordered pair (i,j), self-loops included, becomes a
// one-way road with probability p.
//
// Trials run in (i asc, j asc) order, so a fixed seed always yields the
// same map. Complexity: O(n²).
func RandomSparse(rng *rand.Rand, n int, p float64) (*roadmap.Map, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	coords := make([]geom.Coordinate, n)
	for i := range coords {
		coords[i] = geom.Coordinate{X: rng.Float64(), Y: rng.Float64()}
	}
	roads := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < p {
				roads[i] = append(roads[i], j)
			}
		}
	}

	return roadmap.FromSlices(coords, roads)
}
