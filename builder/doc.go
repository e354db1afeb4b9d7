// SPDX-License-Identifier: MIT

// Package builder constructs deterministic graph fixtures for spectral
// experiments: rings, paths, stars, complete graphs and grids.
//
// Every constructor is a Constructor closure composed by BuildGraph:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithLaplacian(core.Normalized)},
//		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("v"))},
//		builder.Cycle(16),
//	)
//
// Vertex insertion order is documented per constructor because it fixes
// the sample order of every signal defined on the resulting graph.
// Edge weights come from WithWeightFn (default: 1), seeded by WithSeed.
//
// Topology names the same families for command-line use and knows their
// closed-form Laplacian spectra, which makes every fixture double as a
// check on the eigen-solver:
//
//	vals, _ := builder.TopologyRing.Spectrum(8) // 0, 2-√2, 2-√2, 2, 2, 2+√2, 2+√2, 4
package builder
