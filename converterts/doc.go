// Package converters provides two-way adapters between core.Graph and
// popular Go graph libraries:
//   - gonum/graph (simple.WeightedDirectedGraph)
//   - dominikbraun/graph (Graph[string, string])
//
// Use converters to hand a loaded interaction network to gonum's algorithm
// suite, or to pull a digraph assembled elsewhere into the path engine.
//
// Representation limits are explicit rather than silent:
//   - gonum carries no arc polarity; exporting a graph with Negative arcs
//     is ErrNegativeArc. Polarity survives the dominikbraun direction as
//     the "sign" edge attribute.
//   - dominikbraun stores one edge per vertex pair; a core graph holding
//     both signs of the same pair is ErrParallelArcs on export.
//   - Self-loops never travel in either direction: the path engine skips
//     them on ingestion (see LoadSIF) and both target libraries restrict
//     them, so converters drop them.
package converters
