// SPDX-License-Identifier: MIT
// Meyer kernel evaluation.
//
// The spectral axis is split by l1 < l2 < l3 into four bands:
//
//	[0,l1)    scaling = 1                        wavelet = 0
//	[l1,l2)   scaling = cos(π/2·v(|x|/l1 - 1))   wavelet = sin(π/2·v(|x|/l1 - 1))
//	[l2,l3)   scaling = 0                        wavelet = cos(π/2·v(|x|/l2 - 1))
//	[l3,∞)    scaling = 0                        wavelet = 0
//
// v is the transition polynomial u⁴(35 - 84u + 70u² - 20u³): v(0)=0,
// v(1)=1, first three derivatives vanish at both ends, so every band
// boundary is C³.

package filters

import (
	"fmt"
	"math"
)

// Meyer band breakpoints.
const (
	MeyerL1 = 2.0 / 3.0
	MeyerL2 = 4.0 / 3.0
	MeyerL3 = 8.0 / 3.0
)

// meyerTransition is the Meyer auxiliary polynomial v(u).
func meyerTransition(u float64) float64 {
	u2 := u * u
	return u2 * u2 * (35 - 84*u + 70*u2 - 20*u2*u)
}

// EvaluateKernel evaluates the Meyer response of the given variant at every
// spectral coordinate in x. The result has len(x) entries; entries outside
// every band of the variant are explicitly zero. x is not modified.
//
// The variant is validated before any band is computed, so an invalid tag
// fails with ErrInvalidKernelVariant even for an empty x.
//
// Complexity: O(len(x)).
func EvaluateKernel(x []float64, variant Variant) ([]float64, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("EvaluateKernel: %s: %w", variant, ErrInvalidKernelVariant)
	}

	// make zero-fills: uncovered bands read as 0
	out := make([]float64, len(x))
	var xi float64
	switch variant {
	case ScalingFunction:
		for i := range x {
			xi = x[i]
			switch {
			case xi < MeyerL1:
				out[i] = 1
			case xi < MeyerL2:
				out[i] = math.Cos(math.Pi / 2 * meyerTransition(math.Abs(xi)/MeyerL1-1))
			}
		}
	case Wavelet:
		for i := range x {
			xi = x[i]
			switch {
			case xi < MeyerL1:
				// stop band
			case xi < MeyerL2:
				out[i] = math.Sin(math.Pi / 2 * meyerTransition(math.Abs(xi)/MeyerL1-1))
			case xi < MeyerL3:
				out[i] = math.Cos(math.Pi / 2 * meyerTransition(math.Abs(xi)/MeyerL2-1))
			}
		}
	}

	return out, nil
}

// MeyerKernel is one filter of a Meyer bank: a variant bound to a scale.
// It is a plain value; copying it copies its scale.
type MeyerKernel struct {
	Variant Variant
	Scale   float64
}

// Evaluate returns EvaluateKernel(Scale·x, Variant).
func (k MeyerKernel) Evaluate(x []float64) ([]float64, error) {
	scaled := make([]float64, len(x))
	for i, xi := range x {
		scaled[i] = k.Scale * xi
	}

	return EvaluateKernel(scaled, k.Variant)
}

// String renders the kernel as "wavelet(t=0.667)".
func (k MeyerKernel) String() string {
	return fmt.Sprintf("%s(t=%.4g)", k.Variant, k.Scale)
}
