// Package reach computes exact-depth reachability level sets over a
// core.Graph, in both directions at once.
//
// Forward[d] holds every node that some walk of exactly d arcs from the
// source lands on; Backward[d] holds every node from which some walk of
// exactly d arcs reaches the target. Walks may revisit vertices, so the
// same name can appear at many depths, and in signed graphs the same
// name can appear at both parities of one depth.
//
// Each level entry is a Node{Name, Parity} pair. Parity is the XOR of
// the arc signs accumulated along the walk: crossing a Negative arc
// flips it, crossing a Positive arc keeps it. Unsigned graphs only ever
// produce Positive entries.
//
// Expansion is a leveled breadth-first sweep bounded by WithMaxDepth
// (default DefaultMaxDepth). A level is derived purely from the level
// before it, so computing Forward and Backward costs O(maxDepth · E)
// time in the worst case and O(maxDepth · V) space for the level maps.
//
// If the target never shows up in the forward sweep, or the source
// never shows up in the backward sweep, the pair cannot be connected
// within the horizon and Compute returns a Result with both maps empty
// (Result.Empty reports true). Endpoint presence is tested by name
// alone: a target seen only at Negative parity still counts as seen,
// and the parity filtering is left to the consumers of the level sets.
//
// Results are plain values. They may be cached and reused by any number
// of downstream constructions that share the same (graph, source,
// target) triple and need depths no greater than the horizon they were
// computed with.
package reach
