// Package lvgsp builds Meyer-type filterbanks on the spectrum of a graph
// and applies them to signals that live on its vertices.
//
// 🚀 What is lvgsp?
//
//	A small, thread-safe toolkit for spectral graph signal processing:
//		• Core primitives: weighted undirected graphs, safe under locks
//		• Laplacians: combinatorial (D - W) and normalized (I - D^-1/2 W D^-1/2)
//		• Spectrum: lazily cached Fourier basis, lmax, Gershgorin bound
//		• Meyer kernels: scaling function and wavelet bands, C³ transitions
//		• Filterbanks: evaluate, analyze, synthesize, frame bounds, plots
//		• Builders: cycle, path, star, complete and grid topologies
//
// ✨ Why choose lvgsp?
//
//   - Tight frame: the Meyer bank reconstructs any signal exactly
//   - Explicit data: kernels are plain values, scales are passed in, not hidden
//   - Pure Go linear algebra: a Jacobi eigen-solver, no cgo
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    - Graph, Laplacian, Fourier basis and connectivity
//	matrix/  - dense row-major matrices and the symmetric eigen-solver
//	filters/ - Meyer kernels, scale selection, the Filter container and plots
//	builder/ - deterministic graph constructors
//
// and one command, cmd/lvgsp, that prints scales, kernels and whole banks or
// renders them to an HTML chart.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	is the ring C_4 with spectrum {0, 2, 2, 4}; a 4-filter Meyer bank on it
//	has scales 4/3, 2/3 and 1/3.
//
//	go get github.com/katalvlaran/lvgsp
package lvgsp
