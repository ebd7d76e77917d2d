// Package astar implements A* shortest-path search over a roadmap.Map.
//
// Overview:
//
//   - Each query keeps exactly one search record per vertex in a flat
//     arena (the registry). Predecessors are vertex ids, never pointers, so
//     re-opening a vertex simply rewrites its record in place.
//   - The frontier (open set) is a binary heap keyed by (f, h, insertion
//     order). Open vertices whose cost drops are moved with decrease-key
//     (heap.Fix); closed vertices whose cost drops are reopened and pushed
//     again.
//   - The search stops when the goal is popped from the frontier, not when
//     it is first discovered, so the returned path is optimal whenever the
//     heuristic is admissible.
//
// Vertex lifecycle:
//
//	Unseen ──discover──▶ Open ──pop──▶ Closed
//	                      ▲               │
//	                      └───reopen──────┘   (cheaper g found later)
//
// Tie-break:
//
// Frontier entries with equal f are ordered by smaller h, then by earlier
// insertion. A vertex keeps its insertion order across decrease-key and
// gets a fresh one when reopened.
//
// Outcomes:
//
//   - StatusFound:        Result.Path runs from start to goal inclusive, Result.Cost is g(goal).
//   - StatusNoPath:       the frontier was exhausted; the goal is unreachable.
//   - StatusInvalidInput: start or goal is negative.
//   - StatusUnknown:      the zero value, carried by every result returned with an error.
//
// None of the above is an error. Errors are reserved for broken contracts:
//
//   - ErrNilMap:          the map is nil.
//   - ErrUnknownVertex:   start or goal has no coordinate (also matches roadmap.ErrUnknownVertex).
//   - ErrBrokenMap:       a neighbor id has no coordinate.
//   - ErrOptionViolation: an Option was given an invalid value.
//   - ErrExpansionLimit:  WithMaxExpansions was exceeded.
//   - ErrNegativeCost:    the cost function returned a negative or NaN value.
//   - context errors:     the WithContext context was cancelled.
//
// Metrics:
//
// The edge-cost metric and the heuristic are both geom.Euclidean by
// default. WithHeuristic(geom.Zero) reduces the search to uniform-cost
// search (Dijkstra). Using a heuristic that overestimates (for example
// Manhattan on a map with diagonal roads) still terminates but may return
// a suboptimal path.
//
// Concurrency:
//
// Search is synchronous and owns all of its state. The Map is read-only,
// so any number of searches may share it; SearchAll runs a batch of
// queries concurrently on one Map. Cancellation is checked only between
// iterations of the main loop, never in the middle of a relaxation.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap work per expansion round; reopenings
//     can repeat expansions when the heuristic is not consistent.
//   - Space: O(V) for the registry and the frontier.
package astar
