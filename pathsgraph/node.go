package pathsgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cfpath/core"
)

// Node is one vertex of a leveled graph: the underlying vertex Name
// standing at walk position Depth, carrying the cumulative arc-sign
// Parity of the walk prefix that put it there.
type Node struct {
	Depth  int
	Name   string
	Parity core.Sign
}

// String renders "(depth,name)" and appends ",-" for Negative parity,
// so unsigned pipelines read naturally.
func (n Node) String() string {
	if n.Parity == core.Negative {
		return fmt.Sprintf("(%d,%s,-)", n.Depth, n.Name)
	}

	return fmt.Sprintf("(%d,%s)", n.Depth, n.Name)
}

// Less orders nodes by (Depth, Name, Parity) ascending. This is the
// canonical order used everywhere determinism matters: adjacency
// listings, sampling candidate order, and split-copy numbering.
func (n Node) Less(m Node) bool {
	if n.Depth != m.Depth {
		return n.Depth < m.Depth
	}
	if n.Name != m.Name {
		return n.Name < m.Name
	}

	return n.Parity < m.Parity
}

// SortNodes sorts a slice in place into canonical order.
func SortNodes(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Less(nodes[j]) })
}
