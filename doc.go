// Package waypath finds routes on road maps: intersections with planar
// coordinates joined by one-way roads, searched with A*.
//
// What is waypath?
//
//	A small, dependency-light routing toolkit:
//		• Maps: immutable road maps built in code or decoded from YAML/JSON
//		• A*: optimal search with decrease-key, reopening and a stable tie-break
//		• Batches: many queries over one shared map, bounded concurrency
//		• Baselines: Dijkstra (exhaustive), greedy walk, BFS (fewest roads)
//		• Grids: 2D tile maps with 4/8 connectivity turned into road maps
//		• Interop: export to gonum graphs
//		• Metrics: Prometheus counters fed by search hooks
//
// Packages:
//
//	geom/       — Coordinate and distance metrics (Euclidean, Manhattan, Diagonal)
//	roadmap/    — immutable Map, YAML/JSON loader; maptest/ holds fixtures
//	astar/      — Search, SearchAll and their options
//	dijkstra/   — all-distances oracle from one source
//	greedy/     — non-backtracking greedy baseline
//	bfs/        — breadth-first traversal and reachability
//	gridgraph/  — grid → road map adapter, connected components
//	converters/ — road map → gonum graph
//	metrics/    — Prometheus collector
//
// Quick example:
//
//	    3 ──▶ 2
//	    ▲   ↗ ▲
//	    │  /  │
//	    0 ──▶ 1
//
//	m, _ := roadmap.FromSlices(
//		[]geom.Coordinate{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 4}},
//		[][]int{{1, 2, 3}, {2}, {}, {2}},
//	)
//	res, err := astar.Search(m, 0, 2)
//	// res.Path == [0 2], res.Cost == 5
//
// Outcomes:
//
//	A search either finds a path (StatusFound), proves the goal
//	unreachable (StatusNoPath) or rejects negative ids
//	(StatusInvalidInput). Broken contracts, such as an id the map does
//	not know, are returned as errors.
//
// Concurrency:
//
//	Maps are immutable and safe to share. Every search owns its frontier
//	and bookkeeping, so astar.SearchAll can run queries in parallel.
package waypath
