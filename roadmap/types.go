package roadmap

import (
	"errors"

	"github.com/katalvlaran/waypath/geom"
)

// Sentinel errors for Map construction and lookups.
var (
	// ErrUnknownVertex indicates a lookup of an id absent from the coordinate table.
	ErrUnknownVertex = errors.New("roadmap: unknown vertex")

	// ErrNegativeVertex indicates a negative vertex id at construction.
	ErrNegativeVertex = errors.New("roadmap: vertex id must be non-negative")

	// ErrBadCoordinate indicates a NaN or infinite coordinate at construction.
	ErrBadCoordinate = errors.New("roadmap: coordinate must be finite")

	// ErrDanglingNeighbor indicates an adjacency entry without a coordinate.
	ErrDanglingNeighbor = errors.New("roadmap: neighbor has no coordinate")

	// ErrNotAnEdge indicates two consecutive path ids that are not connected.
	ErrNotAnEdge = errors.New("roadmap: consecutive path vertices are not connected")

	// ErrBadDescription indicates a malformed external map description.
	ErrBadDescription = errors.New("roadmap: malformed map description")
)

// Map is an immutable view of a road network.
//
// Vertices are stored densely: each id is assigned a slot in [0, Len())
// in ascending id order, and the per-vertex tables are slices indexed by
// slot. Slot lets per-query structures use flat arrays as well.
type Map struct {
	ids    []int             // slot → vertex id, ascending
	slots  map[int]int       // vertex id → slot
	coords []geom.Coordinate // slot → coordinate
	roads  [][]int           // slot → neighbor ids
}
