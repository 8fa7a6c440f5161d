// Package netroute implements the router's net-ordering and
// rip-up-free pin-chaining policy: for each net, in input order, it
// chains a pathfind.PathFinder search across consecutive pins, and on
// full success commits the net's non-pin cells to the shared Grid so
// that later nets see them as obstacles.
//
// Net ordering is caller-supplied and never re-optimized: because
// earlier nets block later ones without rip-up, overall routability
// depends on input order. This is an accepted property of the core,
// not a defect — the router takes a net list exactly as given and
// never reorders or rebalances it on the caller's behalf.
//
// Commit discipline: segments are staged in a local buffer and applied
// to the Grid only once every segment of a net has succeeded (an
// atomic-per-net commit, rather than committing segment-by-segment as
// each one completes).
package netroute
