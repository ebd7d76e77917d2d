package roadmap

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/waypath/geom"
)

// NewMap builds a Map from a coordinate table and an adjacency table.
// Both tables are copied; later changes to the arguments do not affect
// the Map. Vertices present in coords but absent from roads have no
// outgoing roads.
//
// Returns ErrNegativeVertex for negative ids, ErrBadCoordinate for NaN or
// infinite coordinates and ErrDanglingNeighbor if roads mentions an id
// (as key or as neighbor) missing from coords.
// Complexity: O(V log V + E).
func NewMap(coords map[int]geom.Coordinate, roads map[int][]int) (*Map, error) {
	ids := make([]int, 0, len(coords))
	for id := range coords {
		if id < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeVertex, id)
		}
		if c := coords[id]; !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("%w: %d %v", ErrBadCoordinate, id, c)
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	m := &Map{
		ids:    ids,
		slots:  make(map[int]int, len(ids)),
		coords: make([]geom.Coordinate, len(ids)),
		roads:  make([][]int, len(ids)),
	}
	for slot, id := range ids {
		m.slots[id] = slot
		m.coords[slot] = coords[id]
	}

	for from, list := range roads {
		slot, ok := m.slots[from]
		if !ok {
			return nil, fmt.Errorf("%w: road source %d", ErrDanglingNeighbor, from)
		}
		for _, to := range list {
			if _, ok = m.slots[to]; !ok {
				return nil, fmt.Errorf("%w: road %d→%d", ErrDanglingNeighbor, from, to)
			}
		}
		m.roads[slot] = slices.Clone(list)
	}

	return m, nil
}

// FromSlices builds a Map whose ids are the indices 0..len(coords)-1.
// roads[i] lists the neighbors of vertex i; roads may be shorter than coords.
func FromSlices(coords []geom.Coordinate, roads [][]int) (*Map, error) {
	if len(roads) > len(coords) {
		return nil, fmt.Errorf("%w: %d road lists for %d intersections",
			ErrDanglingNeighbor, len(roads), len(coords))
	}
	c := make(map[int]geom.Coordinate, len(coords))
	for i, xy := range coords {
		c[i] = xy
	}
	r := make(map[int][]int, len(roads))
	for i, list := range roads {
		r[i] = list
	}

	return NewMap(c, r)
}

// Len returns the number of vertices.
func (m *Map) Len() int { return len(m.ids) }

// Vertices returns all vertex ids in ascending order.
func (m *Map) Vertices() []int { return slices.Clone(m.ids) }

// HasVertex reports whether id has a coordinate entry.
func (m *Map) HasVertex(id int) bool {
	_, ok := m.slots[id]

	return ok
}

// Slot returns the dense index of id in [0, Len()).
func (m *Map) Slot(id int) (int, bool) {
	slot, ok := m.slots[id]

	return slot, ok
}

// Coordinate returns the position of id, or ErrUnknownVertex.
func (m *Map) Coordinate(id int) (geom.Coordinate, error) {
	slot, ok := m.slots[id]
	if !ok {
		return geom.Coordinate{}, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}

	return m.coords[slot], nil
}

// Neighbors returns a copy of id's adjacency list, which may be empty
// and may include id itself. Returns ErrUnknownVertex for absent ids.
func (m *Map) Neighbors(id int) ([]int, error) {
	slot, ok := m.slots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}

	return slices.Clone(m.roads[slot]), nil
}

// EachNeighbor calls fn for every neighbor of id in adjacency order and
// stops early when fn returns false. Unlike Neighbors it does not copy.
func (m *Map) EachNeighbor(id int, fn func(n int) bool) error {
	slot, ok := m.slots[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	for _, n := range m.roads[slot] {
		if !fn(n) {
			break
		}
	}

	return nil
}

// HasEdge reports whether b appears in a's adjacency list.
func (m *Map) HasEdge(a, b int) bool {
	slot, ok := m.slots[a]

	return ok && slices.Contains(m.roads[slot], b)
}

// EdgeCount returns the total number of adjacency entries.
func (m *Map) EdgeCount() int {
	n := 0
	for _, list := range m.roads {
		n += len(list)
	}

	return n
}

// PathCost returns the sum of metric over consecutive pairs of path.
// Empty and single-vertex paths cost 0. Every pair must be an edge
// (ErrNotAnEdge) and every id must be known (ErrUnknownVertex).
func (m *Map) PathCost(path []int, metric geom.Func) (float64, error) {
	if len(path) == 0 {
		return 0, nil
	}
	if _, err := m.Coordinate(path[0]); err != nil {
		return 0, err
	}

	legs := make([]float64, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		if !m.HasEdge(a, b) {
			return 0, fmt.Errorf("%w: %d→%d", ErrNotAnEdge, a, b)
		}
		legs = append(legs, metric(m.coords[m.slots[a]], m.coords[m.slots[b]]))
	}

	return floats.Sum(legs), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
