package astar

import (
	"github.com/katalvlaran/waypath/roadmap"
)

// nodeStatus is the lifecycle state of a vertex within one search.
type nodeStatus uint8

const (
	statusUnseen nodeStatus = iota
	statusOpen
	statusClosed
)

// noPred marks a record without predecessor (the start vertex).
const noPred = -1

// searchNode is the per-vertex, per-query bookkeeping record.
// Two records denote the same vertex iff their ids match.
type searchNode struct {
	id     int        // vertex id
	pred   int        // predecessor vertex id, or noPred
	g      float64    // cost from start
	h      float64    // heuristic estimate to goal
	f      float64    // g + h
	status nodeStatus // Unseen, Open or Closed
	seq    uint64     // insertion order, for tie-breaking
	index  int        // position in the frontier heap, -1 when absent
}

// registry is an arena holding one searchNode per map vertex, indexed by
// the map's dense slot. Every record starts Unseen, without predecessor
// and outside the frontier; records are rewritten in place, so pointers
// into the arena stay valid for the lifetime of the search.
type registry struct {
	m     *roadmap.Map
	nodes []searchNode
}

func newRegistry(m *roadmap.Map) *registry {
	ids := m.Vertices()
	nodes := make([]searchNode, len(ids))
	for slot, id := range ids {
		nodes[slot] = searchNode{id: id, pred: noPred, index: -1}
	}

	return &registry{m: m, nodes: nodes}
}

// get returns the record for id, or nil if id is not in the map.
func (r *registry) get(id int) *searchNode {
	slot, ok := r.m.Slot(id)
	if !ok {
		return nil
	}

	return &r.nodes[slot]
}

// path follows predecessor links from goal back to the start and returns
// the reversed chain, start first.
func (r *registry) path(goal int) []int {
	var out []int
	for id := goal; id != noPred; {
		out = append(out, id)
		id = r.get(id).pred
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
