package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/waypath/roadmap"
)

// Dijkstra computes shortest distances from the source vertex to every
// vertex of m.
//
// Returns:
//
//   - dist: vertex id → minimum distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: vertex id → predecessor on one shortest path, only when
//     WithReturnPath is given (nil otherwise). Unreached vertices and the
//     source have no entry.
//   - err:  ErrNoSource, ErrNilMap, ErrVertexNotFound or ErrNegativeCost.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(m *roadmap.Map, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in a fixed order.
	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	if m == nil {
		return nil, nil, ErrNilMap
	}
	if !m.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Prepare state.
	n := m.Len()
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make(map[int]float64, n),
		visited: make(map[int]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, n)
	}

	// 4) Run.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the path src→…→dst from a predecessor map returned with
// WithReturnPath. It reports false if dst was not reached.
func PathTo(prev map[int]int, src, dst int) ([]int, bool) {
	if src == dst {
		return []int{src}, true
	}
	path := []int{dst}
	for cur := dst; cur != src; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *roadmap.Map    // The input map; read-only.
	options Options         // Configuration options.
	dist    map[int]float64 // vertex id → current best distance from Source.
	prev    map[int]int     // vertex id → predecessor (nil unless ReturnPath).
	visited map[int]bool    // Tracks if a vertex's distance is finalized.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.m.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes
// its roads, until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
// Self-loops never improve a distance and are skipped.
func (r *runner) relax(u int) error {
	from, err := r.m.Coordinate(u)
	if err != nil {
		return fmt.Errorf("dijkstra: coordinate of %d: %w", u, err)
	}
	neighbors, err := r.m.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, v := range neighbors {
		if v == u {
			continue
		}
		to, err := r.m.Coordinate(v)
		if err != nil {
			return fmt.Errorf("dijkstra: coordinate of %d: %w", v, err)
		}
		w := r.options.Metric(from, to)
		if w < 0 {
			return fmt.Errorf("%w: road %d→%d cost=%g", ErrNegativeCost, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int     // vertex id
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
