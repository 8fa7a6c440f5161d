// Package grid implements the router's 3-D occupancy model: a dense
// layer × y × x array of obstacle flags with bounds checking and
// monotone blocking.
//
// Grid stores a flat []bool per layer (row-major, indexed y*Width+x)
// rather than arbitrary cell values, since occupancy is the only state
// a cell carries here — cost is a property of a move, computed by the
// pathfind package, never stored in a cell.
//
// Layers are addressed 1 (M1) and 2 (M2) at the public API boundary,
// with no wasted zero-layer slot internally.
//
// Complexity: Block/IsBlocked/InBounds are O(1). A Grid occupies
// O(2·W·H) memory regardless of how many cells are ever blocked.
package grid
