package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvgsp/builder"
	"github.com/katalvlaran/lvgsp/core"
	"github.com/katalvlaran/lvgsp/filters"
)

func printScales(w io.Writer, lmax float64, n int) error {
	t, err := filters.SelectScales(lmax, nil, n)
	if err != nil {
		return err
	}
	for i, v := range t {
		fmt.Fprintf(w, "t[%d] = %.6g\n", i, v)
	}

	return nil
}

func printKernel(w io.Writer, variant string, x []float64) error {
	v, err := filters.ParseVariant(variant)
	if err != nil {
		return err
	}
	r, err := filters.EvaluateKernel(x, v)
	if err != nil {
		return err
	}
	for i := range x {
		fmt.Fprintf(w, "%10.6f  %.6f\n", x[i], r[i])
	}

	return nil
}

func printBank(w io.Writer, gf graphFlags) error {
	g, err := buildGraph(gf)
	if err != nil {
		return err
	}
	bank, err := filters.NewMeyer(g, filters.WithFilterCount(gf.filters))
	if err != nil {
		return err
	}
	eigs, _, err := g.FourierBasis()
	if err != nil {
		return err
	}
	resp, err := bank.Evaluate(eigs)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s n=%d components=%d laplacian=%s lmax=%.6g\n",
		gf.topology, g.Order(), len(g.Components()), g.Kind(), eigs[len(eigs)-1])
	fmt.Fprintf(w, "%10s", "lambda")
	for k := range resp {
		fmt.Fprintf(w, "  %8s", fmt.Sprintf("g%d", k))
	}
	fmt.Fprintln(w)
	for i, lambda := range eigs {
		fmt.Fprintf(w, "%10.6f", lambda)
		for k := range resp {
			fmt.Fprintf(w, "  %8.5f", resp[k][i])
		}
		fmt.Fprintln(w)
	}

	lo, hi, err := bank.FrameBounds(512)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "frame bounds: A=%.6f B=%.6f\n", lo, hi)

	return nil
}

func plotBank(path string, gf graphFlags, samples int) error {
	g, err := buildGraph(gf)
	if err != nil {
		return err
	}
	bank, err := filters.NewMeyer(g, filters.WithFilterCount(gf.filters))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Meyer filterbank on %s(%d)", gf.topology, gf.n)
	if err = filters.Plot(f, bank.Filter, samples, title); err != nil {
		_ = f.Close()
		return err
	}
	log.WithField("file", path).Info("bank plotted")

	return f.Close()
}

// buildGraph maps the topology flags onto a builder constructor.
func buildGraph(gf graphFlags) (*core.Graph, error) {
	kind, err := core.ParseLaplacian(gf.laplacian)
	if err != nil {
		return nil, err
	}

	topo, err := builder.ParseTopology(gf.topology)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"topology": gf.topology, "n": gf.n, "laplacian": kind}).Debug("building graph")

	return builder.BuildGraph(
		[]core.GraphOption{core.WithLaplacian(kind)},
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("v"))},
		topo.Constructor(gf.n),
	)
}
