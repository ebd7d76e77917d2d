package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid maps.
type GridOptions struct {
	// PassableThreshold is the minimum cell value that can be walked on.
	PassableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CutCorners allows a diagonal move between two walls. Only used with Conn8.
	CutCorners bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassableThreshold=1 (values ≥1 are walkable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
	}
}

// GridGraph treats a 2D integer grid as a map. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	PassableThreshold int
	CutCorners        bool
	neighborOffsets   [][2]int
}
