package cfpath

import (
	"math/rand"

	"github.com/katalvlaran/cfpath/cfpg"
	"github.com/katalvlaran/cfpath/pathsgraph"
)

// CombinedCFPG merges several fixed-length CFPGs into one
// variable-length path distribution. Each draw first picks a length
// with probability proportional to that member's total path mass, then
// delegates to the member's memoryless walk, so the combined
// distribution is exactly the union of the members' distributions.
//
// Build the members once, combine, and sample repeatedly.
type CombinedCFPG struct {
	members []*cfpg.CFPG
	masses  []float64
}

// NewCombinedCFPG filters out nil and empty members and precomputes
// their draw masses. Member order is preserved; pass ascending lengths
// for canonical enumeration order.
func NewCombinedCFPG(graphs []*cfpg.CFPG) *CombinedCFPG {
	cc := &CombinedCFPG{}
	for _, c := range graphs {
		if c == nil || c.Empty() {
			continue
		}
		cc.members = append(cc.members, c)
		cc.masses = append(cc.masses, c.WeightSum())
	}

	return cc
}

// Empty reports whether no member carries any path.
func (cc *CombinedCFPG) Empty() bool { return len(cc.members) == 0 }

// Lengths lists the member path lengths in member order.
func (cc *CombinedCFPG) Lengths() []int {
	out := make([]int, len(cc.members))
	for i, c := range cc.members {
		out[i] = c.Length
	}

	return out
}

// CountPaths returns the total number of distinct paths across members.
func (cc *CombinedCFPG) CountPaths() int {
	total := 0
	for _, c := range cc.members {
		total += c.CountPaths()
	}

	return total
}

// EnumeratePaths concatenates the members' enumerations in member
// order. Members of distinct lengths never produce duplicate paths.
func (cc *CombinedCFPG) EnumeratePaths() [][]string {
	paths := [][]string{}
	for _, c := range cc.members {
		paths = append(paths, c.EnumeratePaths()...)
	}

	return paths
}

// SetUniformPathDistribution reweights every member for uniform
// per-path draws and switches the length draw to path counts, making
// every path across all members equally likely.
func (cc *CombinedCFPG) SetUniformPathDistribution() {
	for i, c := range cc.members {
		c.SetUniformPathDistribution()
		cc.masses[i] = float64(c.CountPaths())
	}
}

// SamplePaths draws num paths with replacement across all members.
// A nil rng falls back to a fresh deterministic generator. Sampling an
// empty combination yields an empty, non-nil slice.
func (cc *CombinedCFPG) SamplePaths(num int, rng *rand.Rand) [][]string {
	paths := [][]string{}
	if cc.Empty() || num <= 0 {
		return paths
	}
	if rng == nil {
		rng = pathsgraph.NewRand(pathsgraph.DefaultSeed)
	}

	for i := 0; i < num; i++ {
		paths = append(paths, cc.members[cc.pickMember(rng)].SampleSinglePath(rng))
	}

	return paths
}

// SampleSinglePath draws one path, or nil when the combination is empty.
func (cc *CombinedCFPG) SampleSinglePath(rng *rand.Rand) []string {
	if cc.Empty() {
		return nil
	}
	if rng == nil {
		rng = pathsgraph.NewRand(pathsgraph.DefaultSeed)
	}

	return cc.members[cc.pickMember(rng)].SampleSinglePath(rng)
}

// pickMember draws a member index by cumulative mass.
func (cc *CombinedCFPG) pickMember(rng *rand.Rand) int {
	if len(cc.members) == 1 {
		return 0
	}

	return pickByMass(cc.masses, rng)
}

// pickByMass draws an index with probability proportional to masses.
func pickByMass(masses []float64, rng *rand.Rand) int {
	total := 0.0
	for _, m := range masses {
		total += m
	}
	if total <= 0 {
		return rng.Intn(len(masses))
	}

	r := rng.Float64() * total
	acc := 0.0
	for i, m := range masses {
		acc += m
		if r < acc {
			return i
		}
	}

	// Rounding may leave r a hair past the last bucket.
	return len(masses) - 1
}
