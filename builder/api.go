// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble complex fixtures deterministically.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse draws via cfg.rng).
//   - WithIDScheme(...) / WithSymbolIDs() for human-readable vertex IDs.
//   - Weight and sign policies apply only when the core graph observes them.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (signed/weighted/loops).
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates topology logic behind a uniform function type.
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Rationale:
//   - Single public entry-point ensures consistent option resolution & error wrapping.
//   - Enforces deterministic composition order of constructors.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Create a new graph using the provided core graph options (O(1) here).
	g := core.NewGraph(gopts...)

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// Execute the constructor. Implementations must not panic; they return errors.
		if err := fn(g, cfg); err != nil {
			// Wrap once at the API boundary; inner layers already carry method context.
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Success: return the fully constructed graph (deterministic for equal inputs).
	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn (except documented fixed IDs like "S"/"T").
//   - Emit arcs in a stable, documented order.
//   - Honor core flags (Signed/Weighted/Loops) without silent degrade.
//   - Return only sentinel errors; NEVER panic at runtime.

// Path builds a simple directed path P_n (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) arcs; O(1) extra space.
//func Path(n int) Constructor

// Cycle builds an n-vertex directed cycle C_n (n ≥ 3).
// Complexity: O(n) vertices + O(n) arcs; O(1) extra space.
//func Cycle(n int) Constructor

// Complete builds the complete digraph K_n: every ordered pair (n ≥ 1).
// Complexity: O(n) vertices + O(n²) arcs; O(1) extra space.
//func Complete(n int) Constructor

// TwoBranch builds the fixed S→{B1,B2}→T sampling-fidelity fixture with
// branch weights w1, w2 on the S-side arcs.
// Complexity: O(1) vertices + O(1) arcs.
//func TwoBranch(w1, w2 float64) Constructor

// RandomSparse builds an Erdős–Rényi-like sparse digraph.
// Requires cfg.rng != nil for 0 < p < 1.
// Complexity: O(n²) ordered-pair trials. Deterministic for fixed seed and options.
//func RandomSparse(n int, p float64) Constructor
