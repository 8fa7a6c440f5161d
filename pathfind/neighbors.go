package pathfind

import (
	"github.com/kirollos21/mazeroute/grid"
	"github.com/kirollos21/mazeroute/point"
)

// move pairs a candidate successor cell with the cost of stepping into
// it from its origin.
type move struct {
	to   point.Point
	cost int64
}

// candidateMoves enumerates the (up to five) legal successors of p:
// a step left/right, a step up/down, and a via toggling between M1 and
// M2 at the same (x, y). Layer 1 (M1) is horizontally preferred; layer 2
// (M2) is vertically preferred. A step along the non-preferred axis
// costs 1+wrongPenalty instead of 1; a via costs 1+viaPenalty.
//
// Each candidate is emitted only if it lies within g's bounds.
// Blockage is not checked here: the caller (PathFinder.Find) filters
// blocked and foreign-pin cells during relaxation.
//
// Complexity: O(1).
func candidateMoves(g *grid.Grid, p point.Point, viaPenalty, wrongPenalty int64) []move {
	horizontalPreferred := p.Layer == 1

	moves := make([]move, 0, 5)

	for _, dx := range [2]int{1, -1} {
		to := point.Point{Layer: p.Layer, X: p.X + dx, Y: p.Y}
		if !g.InBounds(to) {
			continue
		}
		cost := int64(1)
		if !horizontalPreferred {
			cost += wrongPenalty
		}
		moves = append(moves, move{to: to, cost: cost})
	}

	for _, dy := range [2]int{1, -1} {
		to := point.Point{Layer: p.Layer, X: p.X, Y: p.Y + dy}
		if !g.InBounds(to) {
			continue
		}
		cost := int64(1)
		if horizontalPreferred {
			cost += wrongPenalty
		}
		moves = append(moves, move{to: to, cost: cost})
	}

	viaLayer := 2
	if p.Layer == 2 {
		viaLayer = 1
	}
	via := point.Point{Layer: viaLayer, X: p.X, Y: p.Y}
	if g.InBounds(via) {
		moves = append(moves, move{to: via, cost: 1 + viaPenalty})
	}

	return moves
}
