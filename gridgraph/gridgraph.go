package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/roadmap"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		PassableThreshold: opts.PassableThreshold,
		CutCorners:        opts.CutCorners,
		neighborOffsets:   offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and walkable.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.PassableThreshold
}

// Index maps (x,y) to the vertex id used in the road map: y*Width + x.
func (gg *GridGraph) Index(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return y*gg.Width + x, nil
}

// Coordinate converts a vertex id back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ToRoadMap converts the grid into an immutable road map. Every cell is a
// vertex positioned at (x, y); walls are vertices without roads, so a
// search to or from a wall reports no path rather than an unknown vertex.
// Roads join walkable cells that are neighbors under gg.Conn. Unless
// CutCorners is set, a diagonal road requires at least one of the two
// orthogonal cells it passes to be walkable.
func (gg *GridGraph) ToRoadMap() (*roadmap.Map, error) {
	n := gg.Width * gg.Height
	coords := make([]geom.Coordinate, n)
	roads := make([][]int, n)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := y*gg.Width + x
			coords[u] = geom.Coordinate{X: float64(x), Y: float64(y)}
			if !gg.Passable(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				if gg.step(x, y, d) {
					roads[u] = append(roads[u], (y+d[1])*gg.Width+x+d[0])
				}
			}
		}
	}

	return roadmap.FromSlices(coords, roads)
}

// step reports whether a move from walkable (x,y) by offset d is allowed.
func (gg *GridGraph) step(x, y int, d [2]int) bool {
	nx, ny := x+d[0], y+d[1]
	if !gg.Passable(nx, ny) {
		return false
	}
	if d[0] == 0 || d[1] == 0 || gg.CutCorners {
		return true
	}

	return gg.Passable(nx, y) || gg.Passable(x, ny)
}
