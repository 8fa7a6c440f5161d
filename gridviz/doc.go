// Package gridviz renders an already-routed session for inspection: a
// read-only collaborator that visualizes routing results without ever
// feeding back into a routing decision.
//
// Render draws a per-layer ASCII map: '.' empty, '#' blocked, and a
// per-net rune along its committed path. DumpJSON writes the same
// information as structured JSON for machine consumers.
package gridviz
