package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgsp/builder"
	"github.com/katalvlaran/lvgsp/core"
	"github.com/katalvlaran/lvgsp/filters"
)

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"lvgsp"}, args...))

	return buf.String(), err
}

func TestCLI_Scales(t *testing.T) {
	out, err := run(t, "scales", "--lmax", "2", "--filters", "6")
	require.NoError(t, err)
	require.Contains(t, out, "t[0] = 10.6667")
	require.Contains(t, out, "t[4] = 0.666667")

	_, err = run(t, "scales", "--lmax", "0")
	require.ErrorIs(t, err, filters.ErrInvalidLMax)
}

func TestCLI_Eval(t *testing.T) {
	out, err := run(t, "eval", "--variant", "sf", "--x", "0, 1, 3")
	require.NoError(t, err)
	require.Contains(t, out, "0.707107")

	_, err = run(t, "eval", "--variant", "bogus", "--x", "1")
	require.ErrorIs(t, err, filters.ErrInvalidKernelVariant)

	_, err = run(t, "eval", "--x", "1,abc")
	require.Error(t, err)
}

func TestCLI_EvalCoordinateList(t *testing.T) {
	out, err := run(t, "eval", "--variant", "wavelet", "--x", "-1,2")
	require.NoError(t, err)
	require.Contains(t, out, " -1.000000  0.000000")
	require.Contains(t, out, "  2.000000  0.707107")

	out, err = run(t, "eval", "--x", "0.5", "--x", "1.5")
	require.NoError(t, err)
	require.Contains(t, out, "  0.500000  1.000000")
	require.Contains(t, out, "  1.500000  0.000000")
	require.Equal(t, 2, strings.Count(out, "\n"))
}

func TestCLI_Bank(t *testing.T) {
	out, err := run(t, "bank", "--topology", "ring", "--n", "8", "--filters", "4")
	require.NoError(t, err)
	require.Contains(t, out, "ring n=8 components=1")
	require.Contains(t, out, "laplacian=combinatorial lmax=4")
	require.Contains(t, out, "frame bounds: A=1.000000 B=1.000000")

	_, err = run(t, "bank", "--topology", "torus")
	require.ErrorIs(t, err, builder.ErrUnknownTopology)

	_, err = run(t, "bank", "--laplacian", "signless")
	require.ErrorIs(t, err, core.ErrUnknownLaplacian)
}

func TestCLI_Plot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.html")
	_, err := run(t, "plot", "--topology", "grid", "--n", "3", "--laplacian", "normalized", "--out", path, "--samples", "32")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Meyer filterbank on grid(3)")
}
