package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells,
// according to gg.Conn connectivity and the same corner rule as ToRoadMap.
// Returns a slice of components; each component is a slice of vertex ids
// (row-major) in ascending order. Components are listed in row-major order
// of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels := gg.label()
	var comps [][]int
	for idx, l := range labels {
		if l < 0 {
			continue
		}
		if l == len(comps) {
			comps = append(comps, nil)
		}
		comps[l] = append(comps[l], idx)
	}

	return comps
}

// SameComponent reports whether cells a and b (vertex ids) are both
// walkable and connected, i.e. whether a search between them can succeed.
func (gg *GridGraph) SameComponent(a, b int) bool {
	n := gg.Width * gg.Height
	if a < 0 || a >= n || b < 0 || b >= n {
		return false
	}
	labels := gg.label()

	return labels[a] >= 0 && labels[a] == labels[b]
}

// label assigns each walkable cell the index of its component (in
// row-major order of first cell) and -1 to walls, using BFS.
func (gg *GridGraph) label() []int {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	for i0 := 0; i0 < total; i0++ {
		x0, y0 := gg.Coordinate(i0)
		if labels[i0] >= 0 || !gg.Passable(x0, y0) {
			continue
		}
		queue := []int{i0}
		labels[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.neighborOffsets {
				if !gg.step(ux, uy, d) {
					continue
				}
				vi := (uy+d[1])*gg.Width + ux + d[0]
				if labels[vi] < 0 {
					labels[vi] = next
					queue = append(queue, vi)
				}
			}
		}
		next++
	}

	return labels
}
