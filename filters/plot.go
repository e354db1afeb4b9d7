// SPDX-License-Identifier: MIT

package filters

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Plot renders every kernel response of f over [0, lmax] as an HTML line
// chart written to w. samples is the number of evaluation points.
// Errors: ErrNilGraph for a nil f, ErrBadSampleCount, kernel and graph
// errors, or the writer's error.
func Plot(w io.Writer, f *Filter, samples int, title string) error {
	if f == nil {
		return fmt.Errorf("Plot: %w", ErrNilGraph)
	}
	if samples < 2 {
		return fmt.Errorf("Plot: samples=%d: %w", samples, ErrBadSampleCount)
	}
	lmax, err := f.g.LMax()
	if err != nil {
		return fmt.Errorf("Plot: %w", err)
	}
	x := Linspace(0, lmax, samples)
	resp, err := f.Evaluate(x)
	if err != nil {
		return fmt.Errorf("Plot: %w", err)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d filters, lmax = %.4g", f.Len(), lmax),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "λ"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "gain"}),
	)

	labels := make([]string, samples)
	for i, v := range x {
		labels[i] = strconv.FormatFloat(v, 'f', 3, 64)
	}
	line.SetXAxis(labels)
	for k, r := range resp {
		data := make([]opts.LineData, len(r))
		for i, v := range r {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(seriesName(k, f.kernels[k]), data)
	}

	if err = line.Render(w); err != nil {
		return fmt.Errorf("Plot: %w", err)
	}

	return nil
}

// seriesName labels kernel k, using its String method when it has one.
func seriesName(k int, kern Kernel) string {
	if s, ok := kern.(fmt.Stringer); ok {
		return fmt.Sprintf("g%d %s", k, s)
	}

	return fmt.Sprintf("g%d", k)
}
