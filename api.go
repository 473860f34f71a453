package cfpath

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cfpath/cfpg"
	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
	"github.com/katalvlaran/cfpath/reach"
)

// SamplePaths draws numSamples source→target paths with replacement.
//
// With WithLength the draw runs on that single length; otherwise every
// length 1..maxDepth contributes, each with probability proportional
// to its total path mass. Cycle-free extraction (the default)
// guarantees no name ever repeats within a path; WithCycleFree(false)
// samples the raw leveled walks instead. An unreachable pair yields an
// empty, non-nil slice — never an error.
func SamplePaths(g *core.Graph, source, target string, numSamples int, opts ...Option) ([][]string, error) {
	o, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	rs, err := ensureReach(g, source, target, &o)
	if err != nil {
		return nil, err
	}
	rng := o.rng
	if rng == nil {
		rng = pathsgraph.NewRand(pathsgraph.DefaultSeed)
	}

	if !o.cycleFree {
		pgs, err := buildPathsGraphs(g, source, target, &o, rs)
		if err != nil {
			return nil, err
		}

		return sampleLeveled(pgs, numSamples, rng), nil
	}

	cfs, err := buildCFPGs(g, source, target, &o, rs)
	if err != nil {
		return nil, err
	}
	combined := NewCombinedCFPG(cfs)
	if o.uniform {
		combined.SetUniformPathDistribution()
	}

	return combined.SamplePaths(numSamples, rng), nil
}

// EnumeratePaths lists every distinct path, shortest lengths first,
// canonical order within a length. Exponential output in the worst
// case; intended for small graphs.
func EnumeratePaths(g *core.Graph, source, target string, opts ...Option) ([][]string, error) {
	o, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	rs, err := ensureReach(g, source, target, &o)
	if err != nil {
		return nil, err
	}

	if !o.cycleFree {
		pgs, err := buildPathsGraphs(g, source, target, &o, rs)
		if err != nil {
			return nil, err
		}
		paths := [][]string{}
		for _, pg := range pgs {
			paths = append(paths, pg.EnumeratePaths()...)
		}

		return paths, nil
	}

	cfs, err := buildCFPGs(g, source, target, &o, rs)
	if err != nil {
		return nil, err
	}

	return NewCombinedCFPG(cfs).EnumeratePaths(), nil
}

// CountPaths returns the number of distinct paths without
// materializing them.
func CountPaths(g *core.Graph, source, target string, opts ...Option) (int, error) {
	o, err := parseOptions(opts)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return 0, ErrGraphNil
	}
	rs, err := ensureReach(g, source, target, &o)
	if err != nil {
		return 0, err
	}

	if !o.cycleFree {
		pgs, err := buildPathsGraphs(g, source, target, &o, rs)
		if err != nil {
			return 0, err
		}
		total := 0
		for _, pg := range pgs {
			total += pg.CountPaths()
		}

		return total, nil
	}

	cfs, err := buildCFPGs(g, source, target, &o, rs)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cfs {
		total += c.CountPaths()
	}

	return total, nil
}

func parseOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// ensureReach computes the level sets once, deep enough to serve every
// queried length; per-length builders then share them.
func ensureReach(g *core.Graph, source, target string, o *Options) (*reach.Result, error) {
	if o.reach != nil {
		return o.reach, nil
	}

	return reach.Compute(g, source, target, reach.WithMaxDepth(o.reachDepth()))
}

// buildCFPGs runs the per-length pipelines concurrently. Lengths are
// independent queries over the read-only inputs, so the only shared
// write is the indexed result slot.
func buildCFPGs(g *core.Graph, source, target string, o *Options, rs *reach.Result) ([]*cfpg.CFPG, error) {
	lengths := o.lengths()
	out := make([]*cfpg.CFPG, len(lengths))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i, length := range lengths {
		i, length := i, length
		eg.Go(func() error {
			c, err := cfpg.FromGraph(g, source, target, length,
				cfpg.WithMaxRounds(o.maxRounds),
				cfpg.WithTargetParity(o.targetParity),
				cfpg.WithReachSets(rs))
			if err != nil {
				return fmt.Errorf("cfpath: length %d: %w", length, err)
			}
			out[i] = c

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// buildPathsGraphs is the raw-walk analogue of buildCFPGs.
func buildPathsGraphs(g *core.Graph, source, target string, o *Options, rs *reach.Result) ([]*pathsgraph.PathsGraph, error) {
	lengths := o.lengths()
	out := make([]*pathsgraph.PathsGraph, len(lengths))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i, length := range lengths {
		i, length := i, length
		eg.Go(func() error {
			pg, err := pathsgraph.FromGraph(g, source, target, length,
				pathsgraph.WithTargetParity(o.targetParity),
				pathsgraph.WithReachSets(rs))
			if err != nil {
				return fmt.Errorf("cfpath: length %d: %w", length, err)
			}
			out[i] = pg

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// sampleLeveled draws raw walks: first a length by mass, then one walk
// from that leveled graph.
func sampleLeveled(pgs []*pathsgraph.PathsGraph, num int, rng *rand.Rand) [][]string {
	paths := [][]string{}
	var live []*pathsgraph.PathsGraph
	var masses []float64
	for _, pg := range pgs {
		if !pg.Empty() {
			live = append(live, pg)
			masses = append(masses, pg.WeightSum())
		}
	}
	if len(live) == 0 || num <= 0 {
		return paths
	}

	for i := 0; i < num; i++ {
		paths = append(paths, live[pickByMass(masses, rng)].SampleSinglePath(rng))
	}

	return paths
}
