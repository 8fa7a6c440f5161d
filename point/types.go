package point

import (
	"errors"
	"fmt"
)

// Sentinel errors for net validation.
var (
	// ErrTooFewPins indicates a net was declared with fewer than two pins.
	ErrTooFewPins = errors.New("point: net must have at least two pins")

	// ErrDuplicateNetName indicates two nets in the same input share a name.
	ErrDuplicateNetName = errors.New("point: duplicate net name")
)

// Point is a single addressable cell in the two-layer routing grid.
// Layer is 1 (M1, horizontally preferred) or 2 (M2, vertically preferred).
// X and Y are zero-based column/row indices.
//
// Point is a plain value type: equality and use as a map key are
// componentwise over (layer, x, y).
type Point struct {
	Layer int
	X     int
	Y     int
}

// Less reports whether p sorts strictly before q under the lexicographic
// total order (Layer, X, Y). It is used to break ties deterministically
// in the pathfinder's priority queue so that two runs over identical
// input always extract equal-cost candidates in the same order.
func (p Point) Less(q Point) bool {
	if p.Layer != q.Layer {
		return p.Layer < q.Layer
	}
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String renders p in the input/output wire format "(layer, x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.Layer, p.X, p.Y)
}

// Pin is a Point required to be reached while routing a particular net.
type Pin struct {
	Point
	Net string
}

// Net is a named, ordered sequence of pins. The router connects
// consecutive pins in Pins order; a net is otherwise opaque to the core.
type Net struct {
	Name string
	Pins []Point
}

// Validate reports ErrTooFewPins if the net does not declare at least two
// pins. This is the one fatal, pre-routing check owned by Net itself;
// all other validation lives with callers that have the surrounding
// context: ioformat checks bounds and duplicate names against the grid
// dimensions and other nets, and netroute.Router.RouteAll checks
// duplicate names again.
func (n Net) Validate() error {
	if len(n.Pins) < 2 {
		return fmt.Errorf("%w: net %q has %d pin(s)", ErrTooFewPins, n.Name, len(n.Pins))
	}

	return nil
}
