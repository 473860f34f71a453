// Package builder provides deterministic, functional-options-style graph
// constructors for tests, benchmarks and examples. It lives alongside core
// to centralize fixture topology, ID schemes, weight and sign distributions,
// and validation logic, keeping test setup DRY and reproducible.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme, weight and sign functions.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefixed decimals ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant core.DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//   - Arc-sign distributions (SignFn implementations):
//     – DefaultSignFn:     always core.Positive.
//     – BernoulliSignFn:   core.Negative with probability pNeg.
//   - Topology constructors (impl_*.go):
//     – Path(n), Cycle(n), Complete(n): classic shapes.
//     – TwoBranch(w1,w2): the weighted two-route sampling fixture.
//     – RandomSparse(n,p): seeded Erdős–Rényi-style digraphs.
//
// Guarantees:
//
//   - Determinism: same graph options, builder options, seed and constructor
//     order produce byte-identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors with sentinel wrapping for invalid build
//     parameters; constructors never panic.
//   - Documented algorithmic complexity (O(n), O(n²), …) per constructor.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package builder
