// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsp/matrix"
)

// mustDense builds an r×c matrix from row-major values.
func mustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for k, v := range vals {
		require.NoError(t, m.Set(k/c, k%c, v))
	}

	return m
}

// mustAt reads m[i][j] or fails the test.
func mustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// propOrthonormal asserts QᵀQ ≈ I within delta.
func propOrthonormal(t *testing.T, Q *matrix.Dense, delta float64) {
	t.Helper()
	n := Q.Cols()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			var dot float64
			for k := 0; k < Q.Rows(); k++ {
				dot += mustAt(t, Q, k, a) * mustAt(t, Q, k, b)
			}
			want := 0.0
			if a == b {
				want = 1
			}
			require.InDelta(t, want, dot, delta, "QᵀQ[%d,%d]", a, b)
		}
	}
}

// propReconstruction asserts A ≈ Q·diag(vals)·Qᵀ within delta.
func propReconstruction(t *testing.T, A, Q *matrix.Dense, vals []float64, delta float64) {
	t.Helper()
	n := A.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += mustAt(t, Q, i, k) * vals[k] * mustAt(t, Q, j, k)
			}
			require.InDelta(t, mustAt(t, A, i, j), sum, delta, "A[%d,%d]", i, j)
		}
	}
}

// finite reports whether every value is a finite float.
func finite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
