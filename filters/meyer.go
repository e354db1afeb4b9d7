// SPDX-License-Identifier: MIT
// Meyer filterbank assembly.
//
// A Meyer bank of n filters is one scaling function at scale t[0] followed
// by n-1 wavelets at t[0..n-2]. With generated scales the bank is a tight
// frame on [0, 2·lmax): Σ_k g_k(λ)² = 1 for every eigenvalue λ.

package filters

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultFilterCount is the number of filters NewMeyer builds by default.
const DefaultFilterCount = 6

// Meyer is a Filter holding a Meyer bank, plus the scales it was built from.
type Meyer struct {
	*Filter
	scales []float64
}

// NewMeyer builds an n-filter Meyer bank over the spectrum of g.
//
// Implementation:
//   - Stage 1: resolve scales with SelectScales. Scales passed through
//     WithScales are reused as-is; otherwise they are derived from g.LMax().
//   - Stage 2: warn (non-fatal) when reused scales number at least n-1.
//   - Stage 3: bind kernel 0 = {ScalingFunction, t[0]} and kernel i+1 =
//     {Wavelet, t[i]} for i = 0..n-2. Each kernel holds its own scale value.
//
// Errors: ErrNilGraph, ErrInvalidFilterCount, ErrInvalidLMax, ErrTooFewScales,
// or the error of g.LMax().
func NewMeyer(g SpectralGraph, opts ...Option) (*Meyer, error) {
	if g == nil {
		return nil, fmt.Errorf("NewMeyer: %w", ErrNilGraph)
	}
	cfg := newConfig(opts...)
	n := cfg.filterCount
	if n < 1 {
		return nil, fmt.Errorf("NewMeyer: n=%d: %w", n, ErrInvalidFilterCount)
	}

	// Stage 1: resolve scales
	var lmax float64
	if cfg.scales == nil {
		var err error
		if lmax, err = g.LMax(); err != nil {
			return nil, fmt.Errorf("NewMeyer: %w", err)
		}
	}
	t, err := SelectScales(lmax, cfg.scales, n)
	if err != nil {
		return nil, fmt.Errorf("NewMeyer: %w", err)
	}

	// Stage 2: scale-count mismatch is only worth a warning
	if cfg.scales != nil && len(t) >= n-1 {
		cfg.log.WithFields(logrus.Fields{
			"scales":  len(t),
			"filters": n,
		}).Warn("more scales specified than needed")
	}

	need := n - 1
	if need < 1 {
		need = 1 // the scaling function always reads t[0]
	}
	if len(t) < need {
		return nil, fmt.Errorf("NewMeyer: %d scales for %d filters: %w", len(t), n, ErrTooFewScales)
	}

	// Stage 3: bind kernels
	kernels := make([]Kernel, 0, n)
	kernels = append(kernels, MeyerKernel{Variant: ScalingFunction, Scale: t[0]})
	for i := 0; i < n-1; i++ {
		kernels = append(kernels, MeyerKernel{Variant: Wavelet, Scale: t[i]})
	}
	cfg.log.WithFields(logrus.Fields{
		"filters": n,
		"lmax":    lmax,
	}).Debug("meyer filterbank built")

	f, err := New(g, kernels, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewMeyer: %w", err)
	}

	return &Meyer{Filter: f, scales: t}, nil
}

// Scales returns a copy of the scale sequence the bank was built from.
// Pass it to WithScales to rebuild an identical bank without recomputing
// the spectrum.
func (m *Meyer) Scales() []float64 {
	out := make([]float64, len(m.scales))
	copy(out, m.scales)

	return out
}
