// Package pathfind implements the router's single-pair shortest-path
// search: a non-negative-weight (Dijkstra) search over the implicit move
// graph whose vertices are point.Point cells and whose edges are the five
// candidate moves of the layer-aware neighbor model (two same-layer
// steps toward the preferred axis, two toward the non-preferred axis at
// +wrongPenalty, one via at +viaPenalty).
//
// PathFinder never materializes an explicit graph of vertices and
// edges: the grid is dense and the per-cell neighbor set is computable
// in O(1), so generating and discarding O(W·H) vertex/edge values per
// segment would be pure overhead. What it keeps is a familiar runner
// shape — a min-heap priority queue with a "lazy decrease-key" (push
// duplicates, skip stale pops via a visited set) — generalized with a
// Point's total order as a tiebreaker so that two runs on identical
// input always extract equal-cost candidates in the same order.
//
// Complexity: O(V log V) time, O(V) memory, where V = 2·Width·Height.
package pathfind
