// SPDX-License-Identifier: MIT
// Filter is a bank of spectral kernels bound to a graph.
//
// A kernel g_k maps eigenvalues to gains. Filtering a signal s by g_k is
// U·diag(g_k(Λ))·Uᵀ·s, where U holds the graph Fourier basis.

package filters

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvgsp/matrix"
)

// Kernel is a spectral response: one gain per spectral coordinate.
// Implementations must return len(x) values and must not modify x.
type Kernel interface {
	Evaluate(x []float64) ([]float64, error)
}

// SpectralGraph is the graph surface a Filter needs. *core.Graph implements it.
type SpectralGraph interface {
	// LMax returns the largest eigenvalue of the graph's structure operator.
	LMax() (float64, error)
	// FourierBasis returns ascending eigenvalues and eigenvectors as columns.
	FourierBasis() ([]float64, *matrix.Dense, error)
}

// Filter stores an ordered list of kernels and applies them on a graph.
type Filter struct {
	g       SpectralGraph
	kernels []Kernel
	log     logrus.FieldLogger
}

// New binds kernels to g. The kernel slice is copied.
// Errors: ErrNilGraph, ErrNoKernels.
func New(g SpectralGraph, kernels []Kernel, opts ...Option) (*Filter, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if len(kernels) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoKernels)
	}
	cfg := newConfig(opts...)
	ks := make([]Kernel, len(kernels))
	copy(ks, kernels)

	return &Filter{g: g, kernels: ks, log: cfg.log}, nil
}

// Len returns the number of kernels.
func (f *Filter) Len() int { return len(f.kernels) }

// Kernels returns a copy of the kernel list in bank order.
func (f *Filter) Kernels() []Kernel {
	out := make([]Kernel, len(f.kernels))
	copy(out, f.kernels)

	return out
}

// Graph returns the graph the filter was built on.
func (f *Filter) Graph() SpectralGraph { return f.g }

// Evaluate returns one response row per kernel at the coordinates x.
// Complexity: O(Len()·len(x)) for Meyer kernels.
func (f *Filter) Evaluate(x []float64) ([][]float64, error) {
	out := make([][]float64, len(f.kernels))
	for k, kern := range f.kernels {
		r, err := kern.Evaluate(x)
		if err != nil {
			return nil, fmt.Errorf("Filter.Evaluate: kernel %d: %w", k, err)
		}
		if len(r) != len(x) {
			return nil, fmt.Errorf("Filter.Evaluate: kernel %d: got %d want %d: %w", k, len(r), len(x), ErrKernelLength)
		}
		out[k] = r
	}

	return out, nil
}

// Analyze filters s with every kernel and returns Len() signals, each
// U·(g_k(Λ) ⊙ Uᵀs).
// Errors: ErrSignalLength, kernel and graph errors.
// Complexity: O(Len()·V²) once the Fourier basis is cached.
func (f *Filter) Analyze(s []float64) ([][]float64, error) {
	e, U, err := f.g.FourierBasis()
	if err != nil {
		return nil, fmt.Errorf("Filter.Analyze: %w", err)
	}
	if len(s) != U.Rows() {
		return nil, fmt.Errorf("Filter.Analyze: len(s)=%d, order=%d: %w", len(s), U.Rows(), ErrSignalLength)
	}
	resp, err := f.Evaluate(e)
	if err != nil {
		return nil, fmt.Errorf("Filter.Analyze: %w", err)
	}

	shat, err := U.TMulVec(s)
	if err != nil {
		return nil, fmt.Errorf("Filter.Analyze: %w", err)
	}
	coef := make([]float64, len(shat))
	out := make([][]float64, len(resp))
	for k := range resp {
		vecmath.MulBlock(coef, shat, resp[k])
		if out[k], err = U.MulVec(coef); err != nil {
			return nil, fmt.Errorf("Filter.Analyze: kernel %d: %w", k, err)
		}
	}
	f.log.WithFields(logrus.Fields{"kernels": len(resp), "order": len(s)}).Debug("signal analyzed")

	return out, nil
}

// Synthesize applies the adjoint of Analyze: Σ_k U·(g_k(Λ) ⊙ Uᵀc_k).
// For a tight frame with bound 1 (a Meyer bank on its design range),
// Synthesize(Analyze(s)) == s.
// Errors: ErrCoefficientCount, ErrSignalLength, kernel and graph errors.
func (f *Filter) Synthesize(c [][]float64) ([]float64, error) {
	if len(c) != len(f.kernels) {
		return nil, fmt.Errorf("Filter.Synthesize: got %d want %d: %w", len(c), len(f.kernels), ErrCoefficientCount)
	}
	e, U, err := f.g.FourierBasis()
	if err != nil {
		return nil, fmt.Errorf("Filter.Synthesize: %w", err)
	}
	resp, err := f.Evaluate(e)
	if err != nil {
		return nil, fmt.Errorf("Filter.Synthesize: %w", err)
	}

	acc := make([]float64, U.Cols())
	var chat []float64
	for k := range c {
		if len(c[k]) != U.Rows() {
			return nil, fmt.Errorf("Filter.Synthesize: coefficient %d: len=%d, order=%d: %w", k, len(c[k]), U.Rows(), ErrSignalLength)
		}
		if chat, err = U.TMulVec(c[k]); err != nil {
			return nil, fmt.Errorf("Filter.Synthesize: %w", err)
		}
		vecmath.MulBlockInPlace(chat, resp[k])
		for i, v := range chat {
			acc[i] += v
		}
	}

	out, err := U.MulVec(acc)
	if err != nil {
		return nil, fmt.Errorf("Filter.Synthesize: %w", err)
	}

	return out, nil
}

// FrameBounds samples Σ_k g_k(x)² on samples evenly spaced points of
// [0, lmax] and returns its minimum A and maximum B. A = B = 1 means the
// bank is a tight, energy-preserving frame on the graph spectrum.
// Errors: ErrBadSampleCount, kernel and graph errors.
func (f *Filter) FrameBounds(samples int) (float64, float64, error) {
	if samples < 2 {
		return 0, 0, fmt.Errorf("Filter.FrameBounds: samples=%d: %w", samples, ErrBadSampleCount)
	}
	lmax, err := f.g.LMax()
	if err != nil {
		return 0, 0, fmt.Errorf("Filter.FrameBounds: %w", err)
	}
	x := Linspace(0, lmax, samples)
	resp, err := f.Evaluate(x)
	if err != nil {
		return 0, 0, fmt.Errorf("Filter.FrameBounds: %w", err)
	}

	sum := make([]float64, samples)
	sq := make([]float64, samples)
	for k := range resp {
		vecmath.MulBlock(sq, resp[k], resp[k])
		for i, v := range sq {
			sum[i] += v
		}
	}
	lo, hi := sum[0], sum[0]
	for _, v := range sum[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}

// Linspace returns n evenly spaced points from lo to hi inclusive.
// n == 1 yields []float64{lo}; n < 1 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}
