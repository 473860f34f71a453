package pathsgraph

import (
	"math/rand"

	"github.com/katalvlaran/cfpath/core"
)

// DefaultSeed seeds the deterministic fallback source used whenever a
// sampling call receives a nil *rand.Rand. Fixed on purpose: two runs
// over the same graph produce the same sample sequence.
const DefaultSeed int64 = 1

// NewRand returns a plain rand.Rand for reproducible sampling runs.
func NewRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// ensureRand applies the nil-fallback policy shared by every sampler
// in the module.
func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(DefaultSeed)
	}

	return rng
}

// EnumeratePaths returns every complete walk as a vertex-name sequence.
// Successors are expanded in canonical order, so the result is sorted
// lexicographically by leveled node. Worst case exponential; intended
// for small graphs and tests.
func (pg *PathsGraph) EnumeratePaths() [][]string {
	paths := [][]string{}
	if pg.Empty() {
		return paths
	}

	walk := make([]Node, 0, pg.Length+1)
	var rec func(n Node)
	rec = func(n Node) {
		walk = append(walk, n)
		if n == pg.Target {
			paths = append(paths, nodeNames(walk))
		} else {
			for _, m := range pg.graph.Successors(n) {
				rec(m)
			}
		}
		walk = walk[:len(walk)-1]
	}
	rec(pg.Source)

	return paths
}

// CountPaths returns the number of complete walks, by a level-by-level
// fold over the DAG. O(V+E).
func (pg *PathsGraph) CountPaths() int {
	if pg.Empty() {
		return 0
	}

	counts := map[Node]int{pg.Source: 1}
	for depth := 1; depth <= pg.Length; depth++ {
		for _, v := range pg.graph.NodesAtDepth(depth) {
			total := 0
			for _, u := range pg.graph.Predecessors(v) {
				total += counts[u]
			}
			counts[v] = total
		}
	}

	return counts[pg.Target]
}

// WeightSum returns the total sampling mass of the graph: the sum over
// complete walks of the product of arc weights along the walk. On an
// unweighted graph this equals float64(CountPaths()).
func (pg *PathsGraph) WeightSum() float64 {
	if pg.Empty() {
		return 0
	}

	sums := map[Node]float64{pg.Target: 1}
	for depth := pg.Length - 1; depth >= 0; depth-- {
		for _, u := range pg.graph.NodesAtDepth(depth) {
			total := 0.0
			for _, v := range pg.graph.Successors(u) {
				total += pg.arcWeight(u, v) * sums[v]
			}
			sums[u] = total
		}
	}

	return sums[pg.Source]
}

// SamplePaths draws num complete walks with replacement. Successor
// choices honor underlying arc weights whenever the graph was built
// weighted; otherwise every successor is equally likely. Candidates
// are visited in canonical order, so a seeded rng reproduces the run;
// nil rng falls back to the DefaultSeed source. An empty graph yields
// an empty result.
func (pg *PathsGraph) SamplePaths(num int, rng *rand.Rand) [][]string {
	paths := [][]string{}
	if pg.Empty() || num <= 0 {
		return paths
	}

	rng = ensureRand(rng)
	for i := 0; i < num; i++ {
		paths = append(paths, pg.sampleOne(rng))
	}

	return paths
}

// SampleSinglePath draws one complete walk, or nil on an empty graph.
func (pg *PathsGraph) SampleSinglePath(rng *rand.Rand) []string {
	if pg.Empty() {
		return nil
	}

	return pg.sampleOne(ensureRand(rng))
}

// sampleOne walks level by level from source to target. Every
// non-target node has at least one successor by the structural
// guarantee, so the walk cannot strand.
func (pg *PathsGraph) sampleOne(rng *rand.Rand) []string {
	path := make([]string, 0, pg.Length+1)
	cur := pg.Source
	path = append(path, cur.Name)
	for cur != pg.Target {
		cur = pg.pickSuccessor(cur, pg.graph.Successors(cur), rng)
		path = append(path, cur.Name)
	}

	return path
}

// pickSuccessor draws one candidate, weighted by underlying arcs when
// the graph is weighted.
func (pg *PathsGraph) pickSuccessor(u Node, succ []Node, rng *rand.Rand) Node {
	if len(succ) == 1 {
		return succ[0]
	}
	if pg.src == nil || !pg.src.Weighted() {
		return succ[rng.Intn(len(succ))]
	}

	weights := make([]float64, len(succ))
	total := 0.0
	for i, v := range succ {
		weights[i] = pg.arcWeight(u, v)
		total += weights[i]
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return succ[i]
		}
	}

	// Rounding pushed r past the last bucket boundary.
	return succ[len(succ)-1]
}

// arcWeight resolves the underlying weight of one leveled edge; the
// matching arc sign is the parity difference of its endpoints.
func (pg *PathsGraph) arcWeight(u, v Node) float64 {
	if pg.src == nil || !pg.src.Weighted() {
		return core.DefaultEdgeWeight
	}
	w, err := pg.src.Weight(u.Name, v.Name, u.Parity.Compose(v.Parity))
	if err != nil {
		return core.DefaultEdgeWeight
	}

	return w
}

// nodeNames projects a leveled walk onto its vertex names.
func nodeNames(walk []Node) []string {
	names := make([]string, len(walk))
	for i, n := range walk {
		names[i] = n.Name
	}

	return names
}
