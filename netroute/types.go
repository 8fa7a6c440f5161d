package netroute

import "github.com/kirollos21/mazeroute/point"

// Result holds the outcome of successfully routing one net: its
// committed path from first to last pin, and the wire-length / via-count
// metrics tallied over that path.
type Result struct {
	Path       []point.Point
	WireLength int
	ViaCount   int
}

// NetResult pairs a net's name with its routing outcome. Result is nil
// if the net could not be routed: unrouted nets are recorded and the
// net loop continues rather than failing outright.
type NetResult struct {
	Name   string
	Result *Result
}
