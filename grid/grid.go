package grid

import "github.com/kirollos21/mazeroute/point"

// numLayers is the fixed number of active metal layers this router
// models: exactly two — no internal slot is reserved for a layer that
// can never be addressed.
const numLayers = 2

// Grid holds the 3-D occupancy state for a routing session: two layers
// of Width×Height obstacle flags. It is created once per session and
// mutated only by blocking cells; there is no rip-up or eviction.
type Grid struct {
	Width, Height int
	occupied      [numLayers][]bool // occupied[layer-1][y*Width+x]
}

// New allocates a Width×Height, two-layer Grid with every cell clear.
// Returns ErrNonPositiveDim if Width or Height is not strictly positive.
// Complexity: O(Width×Height) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNonPositiveDim
	}
	g := &Grid{Width: width, Height: height}
	for l := 0; l < numLayers; l++ {
		g.occupied[l] = make([]bool, width*height)
	}

	return g, nil
}

// InBounds reports whether p addresses a real cell: layer in {1,2},
// 0 ≤ X < Width, 0 ≤ Y < Height.
// Complexity: O(1).
func (g *Grid) InBounds(p point.Point) bool {
	return p.Layer >= 1 && p.Layer <= numLayers &&
		p.X >= 0 && p.X < g.Width &&
		p.Y >= 0 && p.Y < g.Height
}

// IsBlocked reports whether p is occupied. Out-of-bounds points are
// always reported blocked, so callers never need a separate InBounds
// guard before checking blockage.
// Complexity: O(1).
func (g *Grid) IsBlocked(p point.Point) bool {
	if !g.InBounds(p) {
		return true
	}

	return g.occupied[p.Layer-1][p.Y*g.Width+p.X]
}

// Block marks p occupied. It is a no-op if p is out of bounds.
// Blocking is monotone: within a session, a cell is never unblocked.
// Complexity: O(1).
func (g *Grid) Block(p point.Point) {
	if !g.InBounds(p) {
		return
	}
	g.occupied[p.Layer-1][p.Y*g.Width+p.X] = true
}
