package pathsgraph_test

import (
	"fmt"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
)

// ExampleFromGraph condenses the two length-2 routes of a diamond into
// one leveled graph, then enumerates and counts them.
func ExampleFromGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("C", "D")

	pg, err := pathsgraph.FromGraph(g, "A", "D", 2)
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	for _, p := range pg.EnumeratePaths() {
		fmt.Println(p)
	}
	fmt.Println("count:", pg.CountPaths())
	// Output:
	// [A B D]
	// [A C D]
	// count: 2
}

// ExamplePathsGraph_SamplePaths draws reproducible walks: the nil rng
// falls back to a fixed seed, and an explicit seeded rng pins the run.
func ExamplePathsGraph_SamplePaths() {
	g := core.NewGraph()
	_ = g.AddEdge("S", "A")
	_ = g.AddEdge("A", "T")

	pg, err := pathsgraph.FromGraph(g, "S", "T", 2)
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	for _, p := range pg.SamplePaths(2, pathsgraph.NewRand(42)) {
		fmt.Println(p)
	}
	// Output:
	// [S A T]
	// [S A T]
}
