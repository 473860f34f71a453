package pathtree_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cfpath/pathtree"
)

// ExampleNew loads three paths and lists them back in canonical order.
func ExampleNew() {
	tr := pathtree.New([][]string{
		{"A", "C", "D"},
		{"A", "B", "D"},
		{"A", "B", "E"},
	})

	fmt.Println("stored:", tr.Size())
	for _, p := range tr.Paths() {
		fmt.Println(strings.Join(p, "→"))
	}

	// Output:
	// stored: 3
	// A→B→D
	// A→B→E
	// A→C→D
}
