// Package pathsgraph condenses every source→target walk of one exact
// length into a single leveled graph.
//
// # Shape
//
// A node of the leveled graph is a (Depth, Name, Parity) triple: vertex
// Name standing at position Depth of a walk, with Parity the XOR of the
// arc signs crossed so far. Level 0 holds only the source at Positive
// parity; level L holds only the target at the requested target parity.
// Every edge connects consecutive levels, so the leveled graph is a DAG
// even when the underlying graph is full of cycles — a cycle shows up
// as the same Name occurring at several depths, not as a back edge.
//
// # Construction
//
// FromGraph intersects the exact-depth reachability levels of package
// reach: a node (i, n, p) exists iff n is forward-reachable at depth i
// with parity p and backward-reachable from the target in L-i steps
// with the complementary parity. An edge (i,u,p)→(i+1,v,q) exists iff
// the underlying graph has an arc u→v of sign p⊕q. Built this way, the
// graph satisfies one structural guarantee that everything downstream
// leans on: every node and every edge lies on at least one complete
// length-L source→target walk of the requested parity. When no such
// walk exists the graph is empty — never a fragment.
//
// Construction costs O(L·E) time after the reach sweep; reach results
// may be precomputed once and shared across lengths via WithReachSets.
//
// # Operations
//
// EnumeratePaths, CountPaths and WeightSum walk or fold the DAG level
// by level. SamplePaths draws complete walks with replacement, honoring
// underlying arc weights whenever the graph was built weighted, and
// visiting successor candidates in canonical sorted order so that a
// seeded *rand.Rand reproduces runs exactly. Enumeration is exponential
// in the worst case and meant for small graphs; counting and sampling
// stay polynomial.
//
// Walks produced here may repeat vertex names. Cycle-free extraction is
// layered on top by packages precfpg and cfpg, which consume the
// leveled graph through the same DiGraph type exposed here.
package pathsgraph
