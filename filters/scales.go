// SPDX-License-Identifier: MIT

package filters

import (
	"fmt"
	"math"
)

// SelectScales resolves the scale sequence of an n-filter Meyer bank.
//
// If cached is non-nil it is returned (as a copy) whatever its length:
// previously chosen scales always win over recomputation. Otherwise n-1
// scales are generated,
//
//	t[i] = 4/(3·lmax) · 2^(n-2-i),  i = 0..n-2,
//
// a strictly decreasing geometric sequence whose last entry maps lmax onto
// the l2 breakpoint, so the finest wavelet peaks at the top of the spectrum.
//
// Errors: ErrInvalidFilterCount for n < 1; ErrInvalidLMax when scales must be
// computed and lmax is not finite and positive. lmax is ignored for cached scales.
func SelectScales(lmax float64, cached []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("SelectScales: n=%d: %w", n, ErrInvalidFilterCount)
	}
	if cached != nil {
		out := make([]float64, len(cached))
		copy(out, cached)
		return out, nil
	}
	if !(lmax > 0) || math.IsInf(lmax, 0) {
		return nil, fmt.Errorf("SelectScales: lmax=%g: %w", lmax, ErrInvalidLMax)
	}

	base := 4 / (3 * lmax)
	out := make([]float64, n-1)
	for i := range out {
		out[i] = base * math.Ldexp(1, n-2-i)
	}

	return out, nil
}
