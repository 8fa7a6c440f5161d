package pathfind

import (
	"container/heap"

	"github.com/kirollos21/mazeroute/grid"
	"github.com/kirollos21/mazeroute/point"
)

// PathFinder searches a single Grid for shortest paths under the
// layer-aware move costs of candidateMoves. It holds no mutable state
// between calls to Find; the same PathFinder may be reused across many
// segments and nets within a session, reading the Grid's current
// blockage at the time of each call.
type PathFinder struct {
	grid         *grid.Grid
	viaPenalty   int64
	wrongPenalty int64
}

// New constructs a PathFinder bound to g, with the session's via and
// wrong-direction penalties. Returns ErrNegativePenalty if either is
// negative.
func New(g *grid.Grid, viaPenalty, wrongPenalty int64) (*PathFinder, error) {
	if viaPenalty < 0 || wrongPenalty < 0 {
		return nil, ErrNegativePenalty
	}

	return &PathFinder{grid: g, viaPenalty: viaPenalty, wrongPenalty: wrongPenalty}, nil
}

// Find computes the minimum-cost path from start to goal, filtering out
// cells blocked on the Grid and cells belonging to another net's pins
// (foreignPins) unless they are also this net's own pins (ownPins).
// start and goal are always admitted regardless of blockage or pin
// ownership, since both are assumed to be valid endpoints supplied by
// the caller.
//
// Returns the path (start..goal inclusive) and true on success, or nil
// and false if goal is unreachable.
//
// Complexity: O(V log V) time, O(V) memory, V = 2·Width·Height.
func (pf *PathFinder) Find(start, goal point.Point, ownPins, foreignPins map[point.Point]bool) ([]point.Point, bool) {
	if start == goal {
		return []point.Point{start}, true
	}

	bestCost := map[point.Point]int64{start: 0}
	prev := map[point.Point]point.Point{}
	visited := map[point.Point]bool{}

	pq := &queue{{p: start, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(queueItem)
		u := item.p
		if visited[u] {
			continue
		}
		visited[u] = true

		if u == goal {
			return reconstruct(prev, start, goal), true
		}

		for _, mv := range candidateMoves(pf.grid, u, pf.viaPenalty, pf.wrongPenalty) {
			v := mv.to
			if !pf.admitted(v, start, goal, ownPins, foreignPins) {
				continue
			}

			newCost := bestCost[u] + mv.cost
			if c, ok := bestCost[v]; ok && newCost >= c {
				continue
			}

			bestCost[v] = newCost
			prev[v] = u
			heap.Push(pq, queueItem{p: v, cost: newCost})
		}
	}

	return nil, false
}

// admitted reports whether v may be entered during the search: start
// and goal are always admitted; every other cell is rejected if blocked
// on the Grid, or if it belongs to another net's pin set and not this
// net's own.
func (pf *PathFinder) admitted(v, start, goal point.Point, ownPins, foreignPins map[point.Point]bool) bool {
	if v == start || v == goal {
		return true
	}
	if pf.grid.IsBlocked(v) {
		return false
	}
	if foreignPins[v] && !ownPins[v] {
		return false
	}

	return true
}

// reconstruct walks prev backward from goal to start and returns the
// path in start-to-goal order.
func reconstruct(prev map[point.Point]point.Point, start, goal point.Point) []point.Point {
	path := []point.Point{goal}
	for cur := goal; cur != start; {
		p := prev[cur]
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
