package precfpg_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
	"github.com/katalvlaran/cfpath/precfpg"
)

// ExampleFromGraph tags the braid's junction node: the tag set records
// every node some cycle-free route pushes through it.
func ExampleFromGraph() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "B"}, {"D", "C"},
		{"B", "E"}, {"C", "E"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	p, err := precfpg.FromGraph(g, "A", "E", 4)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	for _, n := range p.Tags(pathsgraph.Node{Depth: 2, Name: "D"}) {
		fmt.Println(n)
	}

	// Output:
	// (0,A)
	// (1,B)
	// (1,C)
	// (2,D)
}

// ExamplePreCFPG_SamplePaths walks a forced chain; with one admissible
// successor per step no randomness is consumed.
func ExamplePreCFPG_SamplePaths() {
	g := core.NewGraph()
	_ = g.AddEdge("S", "M")
	_ = g.AddEdge("M", "T")

	p, err := precfpg.FromGraph(g, "S", "T", 2)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	paths, err := p.SamplePaths(2, nil)
	if err != nil {
		fmt.Println("sample:", err)
		return
	}
	for _, path := range paths {
		fmt.Println(strings.Join(path, "→"))
	}

	// Output:
	// S→M→T
	// S→M→T
}
