// SPDX-License-Identifier: MIT

// Package filters builds spectral filterbanks on graphs, centred on the
// Meyer filterbank.
//
// What & Why:
//
//	A graph signal is analysed in the eigenbasis of the graph Laplacian,
//	where eigenvalues play the role of frequencies. A Meyer bank splits that
//	axis into a low-pass scaling function and a ladder of band-pass wavelets
//	whose scales halve from one wavelet to the next. The responses join with
//	smooth polynomial transitions and their squares sum to one, so analysis
//	followed by synthesis reconstructs the signal exactly.
//
// Building blocks:
//
//	EvaluateKernel  pure Meyer response for ScalingFunction or Wavelet.
//	SelectScales    geometric scale ladder from lmax, or reuse of given scales.
//	MeyerKernel     {Variant, Scale} value implementing Kernel.
//	NewMeyer        assembles a bank of n MeyerKernels on a SpectralGraph.
//	Filter          Evaluate / Analyze / Synthesize / FrameBounds for any kernels.
//	Plot            HTML chart of every kernel response over [0, lmax].
//
// Scales are never cached on the graph: read them with Meyer.Scales and
// pass them back with WithScales to rebuild the same bank.
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(32))
//	bank, _ := filters.NewMeyer(g, filters.WithFilterCount(4))
//	coeffs, _ := bank.Analyze(signal)      // 4 filtered signals
//	back, _ := bank.Synthesize(coeffs)     // == signal
package filters
