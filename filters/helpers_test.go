// SPDX-License-Identifier: MIT

package filters_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsp/matrix"
)

// stubGraph is a SpectralGraph with a fixed spectrum and an identity basis,
// so filtering acts sample-wise: out[i] = g(e[i])·s[i].
type stubGraph struct {
	eigs      []float64
	lmax      float64
	lmaxErr   error
	lmaxCalls int
}

func (s *stubGraph) LMax() (float64, error) {
	s.lmaxCalls++
	if s.lmaxErr != nil {
		return 0, s.lmaxErr
	}

	return s.lmax, nil
}

func (s *stubGraph) FourierBasis() ([]float64, *matrix.Dense, error) {
	if len(s.eigs) == 0 {
		return nil, nil, errors.New("stub: no spectrum")
	}
	U, err := matrix.NewIdentity(len(s.eigs))
	if err != nil {
		return nil, nil, err
	}
	out := make([]float64, len(s.eigs))
	copy(out, s.eigs)

	return out, U, nil
}

// newStub returns a stub whose spectrum is eigs and lmax its last entry.
func newStub(eigs ...float64) *stubGraph {
	g := &stubGraph{eigs: eigs, lmax: 2}
	if len(eigs) > 0 {
		g.lmax = eigs[len(eigs)-1]
	}

	return g
}

// requireAllNear asserts every value of got is within delta of want.
func requireAllNear(t *testing.T, want float64, got []float64, delta float64) {
	t.Helper()
	for i, v := range got {
		require.InDelta(t, want, v, delta, "index %d", i)
	}
}
