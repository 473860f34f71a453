// Package precfpg prunes a leveled paths graph down to its cycle-free
// skeleton and annotates it with the tag sets that make history-aware
// sampling possible.
//
// # Why the leveled graph is not enough
//
// A paths graph (package pathsgraph) represents every fixed-length walk,
// and walks happily revisit vertex names: the same name shows up at two
// depths and the projection of a walk onto names contains a cycle. The
// pre-CFPG removes what can be removed structurally and tags what
// cannot.
//
// # Construction
//
// Building starts by deleting every interior node that carries the
// source or target name — no cycle-free path can pass through a copy of
// its own endpoints — and cascading away whatever that strands.
//
// Then come the pruning rounds. One round sweeps depths k = 1..L; at
// each depth it rebuilds the graph as the union, over the depth-k nodes
// x, of x's route subgraph: the backward cone of prefixes into x plus
// the forward cone of suffixes out of x, with the forward copies of x's
// own name cut out and the cut cascaded. Every node of the rebuilt
// graph that still stands at depth ≥ k gains the tag x, recording "this
// node lies downstream of x on some route avoiding a second x". A round
// that changes nothing — or empties the graph — ends the process; since
// each sweep can only shrink the edge set, at most |E| rounds can ever
// run, and WithMaxRounds caps them explicitly (ErrNoConvergence names
// the pathological case instead of looping).
//
// A single sweep is not always enough. Pruning at depth k can destroy,
// at a later depth, the very routes that justified keeping a node
// during an earlier depth's operation, leaving a node whose admissible
// successors all died. Re-running the sweep on its own output washes
// those stale survivors away; the fixed point is exactly the graph on
// which the sampler below can never strand.
//
// # Tags and memory sampling
//
// Tag sets are dense bit sets (github.com/soniakeys/bits) over the
// canonical node order of the initialized graph, so the subset test at
// the heart of sampling is a couple of word operations. SamplePaths
// grows a walk from the source and only steps to successors whose tag
// set contains every node walked so far; on the converged graph such a
// successor always exists until the target is reached. Candidates are
// filtered in canonical order and drawn uniformly, so a seeded
// *rand.Rand reproduces runs.
//
// The pre-CFPG is the halfway house of the pipeline: correct cycle-free
// sampling with per-walk memory. Package cfpg trades the memory away by
// splitting nodes until plain successor draws suffice.
package precfpg
