package pathfind

import "github.com/kirollos21/mazeroute/point"

// queueItem represents a candidate cell and its accumulated cost from
// the search's start, as stored in the priority queue.
type queueItem struct {
	p    point.Point
	cost int64
}

// queue is a min-heap of queueItem ordered by cost ascending, with a
// Point's lexicographic total order breaking ties. The tiebreak is what
// makes the ordering total and deterministic: without it, two items of
// equal cost could pop in either order depending on heap internals.
//
// queue uses a "lazy decrease-key" strategy: relaxing an edge to an
// already-queued cell pushes a new entry rather than mutating the old
// one; stale entries are discarded when popped, by checking a visited
// set.
type queue []queueItem

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}

	return q[i].p.Less(q[j].p)
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
