package precfpg

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cfpath/pathsgraph"
)

// SamplePaths draws num cycle-free paths with replacement, uniformly
// over admissible successors at each step. A nil rng falls back to a
// fresh deterministic generator. Sampling an empty PreCFPG yields an
// empty, non-nil slice.
//
// Complexity: O(num · L · d · W) with d the max out-degree and W the
// tag-word count.
func (p *PreCFPG) SamplePaths(num int, rng *rand.Rand) ([][]string, error) {
	paths := [][]string{}
	if p.Empty() || num <= 0 {
		return paths, nil
	}
	rng = ensureRand(rng)

	for i := 0; i < num; i++ {
		path, err := p.sampleOne(rng)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// SampleSinglePath draws one cycle-free path, or nil when the PreCFPG
// is empty.
func (p *PreCFPG) SampleSinglePath(rng *rand.Rand) ([]string, error) {
	if p.Empty() {
		return nil, nil
	}

	return p.sampleOne(ensureRand(rng))
}

// sampleOne walks source→target keeping the tag bits of every visited
// node; a successor is admissible only when its own tag set covers the
// whole walk so far. Convergence guarantees an admissible successor at
// every interior step, so ErrDeadEnd signals a corrupted structure.
func (p *PreCFPG) sampleOne(rng *rand.Rand) ([]string, error) {
	walk := p.index.zero()
	walk.SetBit(p.index.pos[p.Source], 1)
	scratch := p.index.zero()

	path := []string{p.Source.Name}
	cur := p.Source
	for cur != p.Target {
		var admissible []pathsgraph.Node
		for _, v := range p.graph.Successors(cur) {
			scratch.AndNot(walk, p.tags[v])
			if scratch.AllZeros() {
				admissible = append(admissible, v)
			}
		}
		if len(admissible) == 0 {
			return nil, fmt.Errorf("%w: stuck at %v", ErrDeadEnd, cur)
		}

		next := admissible[0]
		if len(admissible) > 1 {
			next = admissible[rng.Intn(len(admissible))]
		}
		walk.SetBit(p.index.pos[next], 1)
		path = append(path, next.Name)
		cur = next
	}

	return path, nil
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return pathsgraph.NewRand(pathsgraph.DefaultSeed)
	}

	return rng
}
