// Package mazeroute is a two-layer grid maze router for integrated-
// circuit back-end routing: given a rectangular grid with obstructions
// and a set of multi-pin nets, it produces, for each net, a connected
// path across a two-metal-layer stack (M1, M2) that respects obstacles,
// previously-routed wires, and per-layer direction preferences, while
// minimizing a weighted sum of wire length, bend, and via penalties.
//
// The engine is organized as a small pipeline of independent packages:
//
//	point/    — Point, Pin, and Net value types and their total order
//	grid/     — the dense two-layer occupancy grid and obstacle model
//	pathfind/ — single-source shortest path with layer-aware move costs
//	netroute/ — the net loop: chains, commits, and tallies per net
//	ioformat/ — the text input/output file format
//	config/   — penalty override resolution (CLI beats file header)
//	gridviz/  — ASCII and JSON rendering of a routed session
//
// and a command-line front end under cmd/mazeroute.
//
// The core is single-threaded and synchronous: a Grid is owned
// exclusively by one Router for the life of a session, and nets are
// routed strictly in the order supplied, without rip-up. See each
// subpackage's own doc comment for details.
package mazeroute
