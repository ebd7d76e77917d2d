package astar

import "container/heap"

// frontier is the open set: a min-heap of *searchNode ordered by
// (f, h, seq). Each node tracks its own heap index so that a relaxed
// Open node can be moved in place with heap.Fix instead of being
// pushed twice.
type frontier struct {
	items []*searchNode
	seq   uint64
}

// Len returns the number of open nodes.
func (q *frontier) Len() int { return len(q.items) }

// Less orders by smaller f, then smaller h, then earlier insertion.
func (q *frontier) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap swaps two nodes and updates their indices.
func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

// Push appends x; called by heap.Push only.
func (q *frontier) Push(x interface{}) {
	n := x.(*searchNode)
	n.index = len(q.items)
	q.items = append(q.items, n)
}

// Pop removes the last node; called by heap.Pop only.
func (q *frontier) Pop() interface{} {
	old := q.items
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	q.items = old[:last]

	return n
}

// insert stamps n with the next insertion order and pushes it.
func (q *frontier) insert(n *searchNode) {
	n.seq = q.seq
	q.seq++
	heap.Push(q, n)
}

// popMin removes and returns the node with the smallest key.
func (q *frontier) popMin() *searchNode {
	return heap.Pop(q).(*searchNode)
}

// update restores heap order after n's key decreased.
func (q *frontier) update(n *searchNode) {
	heap.Fix(q, n.index)
}
