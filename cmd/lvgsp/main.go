// Command lvgsp builds Meyer filterbanks on graph spectra and inspects them.
//
//	lvgsp scales --lmax 2 --filters 6
//	lvgsp eval --variant wavelet --x 0,0.5,1,1.5,2,3
//	lvgsp bank --topology ring --n 16 --filters 4
//	lvgsp plot --topology grid --n 5 --out bank.html
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// graphFlags are shared by commands that build a graph.
type graphFlags struct {
	topology  string
	n         int
	laplacian string
	filters   int
}

func (gf *graphFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "topology",
			Aliases:     []string{"t"},
			Usage:       "Graph topology: ring, path, star, complete or grid (n×n)",
			Value:       "ring",
			Destination: &gf.topology,
		},
		&cli.IntFlag{
			Name:        "n",
			Usage:       "Number of vertices (grid: side length)",
			Value:       16,
			Destination: &gf.n,
		},
		&cli.StringFlag{
			Name:        "laplacian",
			Aliases:     []string{"l"},
			Usage:       "Laplacian kind: combinatorial or normalized",
			Value:       "combinatorial",
			Destination: &gf.laplacian,
		},
		&cli.IntFlag{
			Name:        "filters",
			Aliases:     []string{"f"},
			Usage:       "Number of filters in the bank",
			Value:       6,
			Destination: &gf.filters,
		},
	}
}

func newApp() *cli.App {
	var (
		lmax    float64
		count   int
		variant string
		out     string
		samples int
		gf      graphFlags
	)

	return &cli.App{
		Name:                 "lvgsp",
		Usage:                "Meyer filterbanks on graph spectra",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(cCtx *cli.Context) error {
			if cCtx.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "scales",
				Aliases: []string{"s"},
				Usage:   "Print the scale sequence for a spectrum bound",
				Action: func(cCtx *cli.Context) error {
					return printScales(cCtx.App.Writer, lmax, count)
				},
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:        "lmax",
						Usage:       "Largest Laplacian eigenvalue",
						Destination: &lmax,
						Required:    true,
					},
					&cli.IntFlag{
						Name:        "filters",
						Aliases:     []string{"f"},
						Usage:       "Number of filters in the bank",
						Value:       6,
						Destination: &count,
					},
				},
			},
			{
				Name:    "eval",
				Aliases: []string{"e"},
				Usage:   "Evaluate a Meyer kernel at spectral coordinates",
				Action: func(cCtx *cli.Context) error {
					return printKernel(cCtx.App.Writer, variant, cCtx.Float64Slice("x"))
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "variant",
						Usage:       "Kernel variant: scaling (sf) or wavelet",
						Value:       "scaling",
						Destination: &variant,
					},
					&cli.Float64SliceFlag{
						Name:     "x",
						Usage:    "Spectral coordinates, comma separated or repeated",
						Required: true,
					},
				},
			},
			{
				Name:    "bank",
				Aliases: []string{"b"},
				Usage:   "Build a Meyer bank on a graph and print its responses",
				Action: func(cCtx *cli.Context) error {
					return printBank(cCtx.App.Writer, gf)
				},
				Flags: gf.flags(),
			},
			{
				Name:    "plot",
				Aliases: []string{"p"},
				Usage:   "Render the bank responses as an HTML chart",
				Action: func(cCtx *cli.Context) error {
					log.Debugf("Rendering to %s", out)
					return plotBank(out, gf, samples)
				},
				Flags: append(gf.flags(),
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Usage:       "Output HTML file",
						Value:       "meyer.html",
						Destination: &out,
					},
					&cli.IntFlag{
						Name:        "samples",
						Usage:       "Number of points on the spectral axis",
						Value:       200,
						Destination: &samples,
					},
				),
			},
		},
	}
}
