package cfpg_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cfpath/builder"
	"github.com/katalvlaran/cfpath/cfpg"
	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
)

// benchSparse samples a reproducible random digraph with v vertices
// named v0..v<v-1> and arc probability p.
func benchSparse(b *testing.B, v int, p float64) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithSymbNumb("v")},
		builder.RandomSparse(v, p))
	if err != nil {
		b.Fatalf("BuildGraph: %v", err)
	}

	return g
}

// BenchmarkFromGraph_Sparse measures the full split-graph build on a
// 30-vertex random digraph at length 5.
func BenchmarkFromGraph_Sparse(b *testing.B) {
	const v = 30
	g := benchSparse(b, v, 0.15)
	src, dst := "v0", fmt.Sprintf("v%d", v-1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cfpg.FromGraph(g, src, dst, 5, cfpg.WithMaxRounds(200))
	}
}

// BenchmarkSamplePaths_Sparse measures drawing 100 memoryless walks
// from one prebuilt split graph.
func BenchmarkSamplePaths_Sparse(b *testing.B) {
	const v = 30
	g := benchSparse(b, v, 0.15)
	src, dst := "v0", fmt.Sprintf("v%d", v-1)
	c, err := cfpg.FromGraph(g, src, dst, 5, cfpg.WithMaxRounds(200))
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	rng := pathsgraph.NewRand(42)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = c.SamplePaths(100, rng)
	}
}
