// SPDX-License-Identifier: MIT
// File: options.go
// Role: BuilderOption setters, vertex ID schemes and weight generators.
// Contract:
//   - Setters panic on nil functions; constructors never panic.
//   - The default RNG is seeded, so unseeded builds are reproducible too.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

const defaultSeed int64 = 1

// IDFn maps a zero-based position to a vertex ID. It must be pure.
type IDFn func(idx int) string

// WeightFn draws the weight of the next emitted edge.
type WeightFn func(r *rand.Rand) float64

// BuilderOption mutates the configuration before any constructor runs.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: UnitWeightFn,
		rng:      rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator. Grid ignores it.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand hands the weight generator an explicit RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed reseeds the weight generator's RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. A weight the graph
// rejects (non-finite or ≤ 0) fails the build with ErrConstructFailed.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithWeight gives every edge the same weight w.
func WithWeight(w float64) BuilderOption {
	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// DefaultIDFn: 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn: 0→"A" … 25→"Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// PrefixIDFn returns prefix+idx, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// UnitWeightFn gives every edge weight 1.
func UnitWeightFn(*rand.Rand) float64 { return 1 }

// UniformWeightFn draws weights uniformly from [lo, hi).
func UniformWeightFn(lo, hi float64) WeightFn {
	return func(r *rand.Rand) float64 { return lo + r.Float64()*(hi-lo) }
}
