package netroute

import (
	"fmt"

	"github.com/kirollos21/mazeroute/grid"
	"github.com/kirollos21/mazeroute/pathfind"
	"github.com/kirollos21/mazeroute/point"
)

// Router drives the net loop: for each net it chains per-segment
// searches between consecutive pins, commits the result to the shared
// Grid, and tallies wire length and via count. Router owns the Grid
// exclusively for the life of a session; the PathFinder it holds only
// reads the Grid.
type Router struct {
	grid *grid.Grid
	pf   *pathfind.PathFinder
}

// New constructs a Router over g using pf for segment searches.
func New(g *grid.Grid, pf *pathfind.PathFinder) (*Router, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if pf == nil {
		return nil, ErrNilPathFinder
	}

	return &Router{grid: g, pf: pf}, nil
}

// RouteAll validates and routes every net in nets, in the given order.
// It returns a fatal error if any net fails the pre-routing pin-count
// check or if two nets share a name; neither check performs any search.
// A net that cannot be routed under the current Grid state is recorded
// with a nil Result in the returned slice; routing continues with the
// remaining nets (spec: unroutable nets are non-fatal).
func (r *Router) RouteAll(nets []point.Net) ([]NetResult, error) {
	seen := make(map[string]bool, len(nets))
	for _, net := range nets {
		if err := net.Validate(); err != nil {
			return nil, err
		}
		if seen[net.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNetName, net.Name)
		}
		seen[net.Name] = true
	}

	allPins := make(map[point.Point]bool)
	for _, net := range nets {
		for _, p := range net.Pins {
			allPins[p] = true
		}
	}

	results := make([]NetResult, len(nets))
	for i, net := range nets {
		res, _ := r.RouteNet(net, allPins)
		results[i] = NetResult{Name: net.Name, Result: res}
	}

	return results, nil
}

// RouteNet routes a single net's consecutive pin chain, given allPins —
// the union of every pin across the whole session, including this net's
// own. It returns (nil, nil) if any segment is unroutable under the
// Grid's current blockage: the net is recorded as unrouted and no
// partial commit reaches the Grid, since commits are staged locally and
// only applied once every segment has succeeded (atomic-per-net
// commit). It returns a non-nil error only for the fatal
// fewer-than-two-pins configuration check.
func (r *Router) RouteNet(net point.Net, allPins map[point.Point]bool) (*Result, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}

	own := make(map[point.Point]bool, len(net.Pins))
	for _, p := range net.Pins {
		own[p] = true
	}

	var full []point.Point
	for i := 0; i < len(net.Pins)-1; i++ {
		segment, ok := r.pf.Find(net.Pins[i], net.Pins[i+1], own, allPins)
		if !ok {
			return nil, nil
		}
		// The first segment is taken whole; every later segment drops
		// its leading point, which equals the previous segment's last
		// point, to avoid duplicating it in the concatenated path.
		if i > 0 {
			segment = segment[1:]
		}
		full = append(full, segment...)
	}

	wireLength, viaCount := tally(full)

	for _, p := range full {
		if !own[p] {
			r.grid.Block(p)
		}
	}

	return &Result{Path: full, WireLength: wireLength, ViaCount: viaCount}, nil
}

// tally computes wire length (the count of same-layer unit moves) and
// via count (the count of layer-changing moves) over a concatenated
// path, per invariant I3.
func tally(path []point.Point) (wireLength, viaCount int) {
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if cur.Layer != prev.Layer {
			viaCount++
			continue
		}
		wireLength += abs(cur.X-prev.X) + abs(cur.Y-prev.Y)
	}

	return wireLength, viaCount
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
