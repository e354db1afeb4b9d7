// SPDX-License-Identifier: MIT

package filters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsp/filters"
)

func TestSelectScales_Formula(t *testing.T) {
	got, err := filters.SelectScales(2, nil, 6)
	require.NoError(t, err)
	// 4/(3·2) = 2/3, times 2^4..2^0
	require.InDeltaSlice(t, []float64{32.0 / 3, 16.0 / 3, 8.0 / 3, 4.0 / 3, 2.0 / 3}, got, 1e-12)
}

// TestSelectScales_Properties sweeps n and lmax.
func TestSelectScales_Properties(t *testing.T) {
	for _, lmax := range []float64{0.25, 1, 2, 7.3, 1e3} {
		for n := 2; n <= 12; n++ {
			got, err := filters.SelectScales(lmax, nil, n)
			require.NoError(t, err)
			require.Len(t, got, n-1)
			for i, v := range got {
				require.Greater(t, v, 0.0)
				want := 4 / (3 * lmax) * math.Pow(2, float64(n-2-i))
				require.InDelta(t, want, v, 1e-12*want)
				if i > 0 {
					require.Less(t, v, got[i-1], "strictly decreasing")
					require.InDelta(t, 2.0, got[i-1]/v, 1e-12)
				}
			}
			// the finest scale maps lmax onto l2
			require.InDelta(t, filters.MeyerL2, got[n-2]*lmax, 1e-12)
		}
	}
}

func TestSelectScales_SingleFilter(t *testing.T) {
	got, err := filters.SelectScales(2, nil, 1)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSelectScales_ReusesCached(t *testing.T) {
	cached := []float64{3, 1}
	// length mismatch and an invalid lmax do not matter when reusing
	got, err := filters.SelectScales(0, cached, 6)
	require.NoError(t, err)
	require.Equal(t, cached, got)

	got[0] = 99
	require.Equal(t, 3.0, cached[0], "result is a copy")

	got, err = filters.SelectScales(2, []float64{}, 4)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSelectScales_Errors(t *testing.T) {
	_, err := filters.SelectScales(2, nil, 0)
	require.ErrorIs(t, err, filters.ErrInvalidFilterCount)
	_, err = filters.SelectScales(2, []float64{1}, -3)
	require.ErrorIs(t, err, filters.ErrInvalidFilterCount)

	for _, lmax := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = filters.SelectScales(lmax, nil, 6)
		require.ErrorIs(t, err, filters.ErrInvalidLMax, "lmax=%g", lmax)
	}
}
