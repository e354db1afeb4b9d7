// SPDX-License-Identifier: MIT

package filters_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsp/builder"
	"github.com/katalvlaran/lvgsp/core"
	"github.com/katalvlaran/lvgsp/filters"
)

// shortKernel returns one value too few.
type shortKernel struct{}

func (shortKernel) Evaluate(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, nil
	}
	return make([]float64, len(x)-1), nil
}

// failingKernel always errors.
type failingKernel struct{ err error }

func (k failingKernel) Evaluate([]float64) ([]float64, error) { return nil, k.err }

func TestNew_Errors(t *testing.T) {
	_, err := filters.New(nil, []filters.Kernel{filters.MeyerKernel{Variant: filters.Wavelet, Scale: 1}})
	require.ErrorIs(t, err, filters.ErrNilGraph)
	_, err = filters.New(newStub(0, 1), nil)
	require.ErrorIs(t, err, filters.ErrNoKernels)
}

func TestFilter_KernelsIsCopy(t *testing.T) {
	ks := []filters.Kernel{filters.MeyerKernel{Variant: filters.Wavelet, Scale: 1}}
	f, err := filters.New(newStub(0, 1), ks)
	require.NoError(t, err)
	ks[0] = shortKernel{}
	got := f.Kernels()
	require.IsType(t, filters.MeyerKernel{}, got[0])
	got[0] = shortKernel{}
	require.IsType(t, filters.MeyerKernel{}, f.Kernels()[0])
}

func TestFilter_EvaluateErrors(t *testing.T) {
	f, err := filters.New(newStub(0, 1), []filters.Kernel{shortKernel{}})
	require.NoError(t, err)
	_, err = f.Evaluate([]float64{1, 2})
	require.ErrorIs(t, err, filters.ErrKernelLength)

	boom := errors.New("boom")
	f, err = filters.New(newStub(0, 1), []filters.Kernel{failingKernel{boom}})
	require.NoError(t, err)
	_, err = f.Evaluate([]float64{1})
	require.ErrorIs(t, err, boom)
	_, err = f.Analyze([]float64{1, 2})
	require.ErrorIs(t, err, boom)
	_, err = f.Synthesize([][]float64{{1, 2}})
	require.ErrorIs(t, err, boom)
}

// TestFilter_AnalyzeSampleWise: with an identity basis, filtering is a
// per-sample gain g_k(λ_i)·s_i.
func TestFilter_AnalyzeSampleWise(t *testing.T) {
	g := newStub(0, 0.5, 1, 1.5, 2)
	m, err := filters.NewMeyer(g, filters.WithFilterCount(3))
	require.NoError(t, err)

	s := []float64{1, -2, 3, -4, 5}
	out, err := m.Analyze(s)
	require.NoError(t, err)
	require.Len(t, out, 3)

	resp, err := m.Evaluate(g.eigs)
	require.NoError(t, err)
	for k := range out {
		for i := range s {
			require.InDelta(t, resp[k][i]*s[i], out[k][i], 1e-15)
		}
	}
}

func TestFilter_ShapeErrors(t *testing.T) {
	m, err := filters.NewMeyer(newStub(0, 1, 2))
	require.NoError(t, err)

	_, err = m.Analyze([]float64{1, 2})
	require.ErrorIs(t, err, filters.ErrSignalLength)

	_, err = m.Synthesize([][]float64{{1, 2, 3}})
	require.ErrorIs(t, err, filters.ErrCoefficientCount)

	c := make([][]float64, m.Len())
	for k := range c {
		c[k] = []float64{0, 0, 0}
	}
	c[2] = []float64{0}
	_, err = m.Synthesize(c)
	require.ErrorIs(t, err, filters.ErrSignalLength)

	_, _, err = m.FrameBounds(1)
	require.ErrorIs(t, err, filters.ErrBadSampleCount)
}

func TestFilter_GraphErrorsPropagate(t *testing.T) {
	g := &stubGraph{lmax: 2}
	m, err := filters.NewMeyer(g)
	require.NoError(t, err)
	_, err = m.Analyze([]float64{1})
	require.Error(t, err)
	_, err = m.Synthesize(make([][]float64, m.Len()))
	require.Error(t, err)

	g.lmaxErr = errors.New("gone")
	_, _, err = m.FrameBounds(10)
	require.ErrorIs(t, err, g.lmaxErr)
}

// TestMeyer_PerfectReconstruction runs analysis then synthesis on real graphs.
func TestMeyer_PerfectReconstruction(t *testing.T) {
	cases := map[string]struct {
		gopts []core.GraphOption
		cons  builder.Constructor
	}{
		"ring":            {nil, builder.Cycle(12)},
		"grid-normalized": {[]core.GraphOption{core.WithLaplacian(core.Normalized)}, builder.Grid(3, 4)},
		"star":            {nil, builder.Star(7)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, nil, tc.cons)
			require.NoError(t, err)

			logger, hook := logtest.NewNullLogger()
			m, err := filters.NewMeyer(g, filters.WithFilterCount(4), filters.WithLogger(logger))
			require.NoError(t, err)
			require.Empty(t, hook.AllEntries())

			rng := rand.New(rand.NewSource(3))
			s := make([]float64, g.Order())
			for i := range s {
				s[i] = rng.NormFloat64()
			}

			coeffs, err := m.Analyze(s)
			require.NoError(t, err)
			require.Len(t, coeffs, 4)
			back, err := m.Synthesize(coeffs)
			require.NoError(t, err)
			require.InDeltaSlice(t, s, back, 1e-9)

			// energy is preserved by a tight frame
			var es, ec float64
			for _, v := range s {
				es += v * v
			}
			for _, c := range coeffs {
				for _, v := range c {
					ec += v * v
				}
			}
			require.InDelta(t, es, ec, 1e-9*es)
		})
	}
}

// TestMeyer_ConstantSignalIsLowPass: the constant vector lives at λ=0,
// where only the scaling function responds.
func TestMeyer_ConstantSignalIsLowPass(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(10))
	require.NoError(t, err)
	m, err := filters.NewMeyer(g)
	require.NoError(t, err)

	s := make([]float64, 10)
	for i := range s {
		s[i] = 3
	}
	out, err := m.Analyze(s)
	require.NoError(t, err)
	requireAllNear(t, 3, out[0], 1e-9)
	for k := 1; k < len(out); k++ {
		requireAllNear(t, 0, out[k], 1e-9)
	}
}

func TestLinspace(t *testing.T) {
	require.Nil(t, filters.Linspace(0, 1, 0))
	require.Nil(t, filters.Linspace(0, 1, -3))
	require.Equal(t, []float64{2}, filters.Linspace(2, 5, 1))
	require.Equal(t, []float64{0, 0.5, 1}, filters.Linspace(0, 1, 3))
	x := filters.Linspace(0, math.Pi, 7)
	require.Equal(t, math.Pi, x[6])
}
