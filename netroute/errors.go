package netroute

import "errors"

// Sentinel errors for Router configuration and fatal net validation.
// Unroutable nets are not an error: Router.RouteNet reports them via a
// nil *Result, leaving the net loop free to continue with the next net.
var (
	// ErrNilGrid indicates a nil *grid.Grid was supplied to New.
	ErrNilGrid = errors.New("netroute: grid is nil")

	// ErrNilPathFinder indicates a nil *pathfind.PathFinder was supplied to New.
	ErrNilPathFinder = errors.New("netroute: path finder is nil")

	// ErrDuplicateNetName indicates two nets passed to RouteAll share a name.
	ErrDuplicateNetName = errors.New("netroute: duplicate net name")
)
