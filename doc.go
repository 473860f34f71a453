// Package cfpath extracts cycle-free paths from directed influence
// graphs — sample them, enumerate them, count them, without paying the
// combinatorial price of brute-force simple-path search.
//
// 🚀 What is cfpath?
//
//	A staged pipeline that answers one question efficiently: which
//	paths of a given length connect source to target without ever
//	repeating a vertex name?
//		• Core primitives: signed/weighted digraphs with arc-level identity
//		• Reach levels: exact-depth forward/backward BFS with sign parity
//		• Paths graph: the leveled superset of all fixed-length walks
//		• Pre-CFPG: convergent pruning + tag sets for memory sampling
//		• CFPG: node splitting — memoryless, provably cycle-free draws
//		• Extras: path trees for re-sampling, variable-length combining
//
// ✨ Why choose cfpath?
//
//   - Polynomial intermediates – no up-front path explosion
//   - Faithful sampling – weighted draws, optional uniform-over-paths
//   - Deterministic – explicit RNGs, canonical orders, stable rebuilds
//   - Pure computation – no I/O in the pipeline, context-free API
//
// Under the hood, the stages live in their own subpackages:
//
//	core/       — Graph, Arc, Sign: the input model
//	reach/      — per-depth reachability level sets
//	pathsgraph/ — leveled DAG of all length-L walks
//	precfpg/    —
//	cfpg/       — split-node graph; the memoryless endpoint
//	pathtree/   — prefix tree over explicit path lists
//	builder/    — deterministic topology generators for tests & benches
//	converterts/ —
//
// Quick ASCII example:
//
//	    A──▶B──▶D──▶B ✗ (name repeat)
//	    │        ▲
//	    └───▶C───┘   ✓ A→C→D… survives
//
//	the pipeline keeps exactly the walks whose names stay distinct.
//
// The root package ties the stages together: SamplePaths, EnumeratePaths
// and CountPaths accept either an exact length or a depth bound to
// aggregate across lengths, and LoadSIF ingests the simple interaction
// format. Dive into README.md for worked examples.
//
//	go get github.com/katalvlaran/cfpath
package cfpath
