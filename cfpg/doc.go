// Package cfpg builds the cycle-free paths graph: the final stage of
// the extraction pipeline, in which sampling needs no memory at all.
//
// # Why split nodes
//
// A converged pre-CFPG guarantees that every walk can be completed,
// but a walker still has to consult its history: which successors are
// admissible depends on the names visited so far. The CFPG removes
// that dependence by splitting each pre-CFPG node into copies, one per
// equivalence class of histories. Two partial paths into a node land
// in the same copy exactly when they leave the same set of completions
// open, so a copy's outgoing edges are correct for every path that
// reaches it.
//
// # Construction
//
// The build walks the pre-CFPG backward from the target. The target
// starts as a single copy whose signature is its full tag set. At
// depth i, each raw node x is combined with every already-built copy w
// one level up: the intersection of w's signature with x's tags is
// pruned down to the routes that still connect the source to x without
// repeating a name. The surviving node set becomes a candidate
// signature; raw nodes sharing a signature share a copy, and the
// copy's successors are exactly the w's that produced it. Copies of
// the same raw node are numbered by the canonical order of their
// signatures, so rebuilding the same graph yields the same names.
// A final sweep drops copies the source can no longer reach.
//
// # Sampling and weights
//
// Because history is encoded in the node identity, sampling is a plain
// weighted successor draw, exactly as in package pathsgraph. Edge
// weights come from the underlying graph; SetUniformPathDistribution
// replaces them with suffix path counts, which makes every complete
// path equally likely.
package cfpg
