package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/whigg/subradar/surface"
)

// writePlot renders the estimate as a PNG: selected correlation length
// against permittivity, skipping rows where the search found nothing.
func writePlot(path string, est surface.SurfaceEstimate) error {
	pts := make(plotter.XYs, 0, len(est.Ep))
	for i := range est.Ep {
		if math.IsNaN(est.Cl[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: est.Ep[i], Y: est.Cl[i]})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no solved rows to plot")
	}

	p := plot.New()
	p.Title.Text = "Surface estimate"
	p.X.Label.Text = "permittivity"
	p.Y.Label.Text = "correlation length (m)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line, plotter.NewGrid())

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// writeHTML renders the estimate as an interactive go-echarts line chart.
func writeHTML(path, model, approx string, pcDB, pnDB float64, est surface.SurfaceEstimate) error {
	xs := make([]string, 0, len(est.Ep))
	ys := make([]opts.LineData, 0, len(est.Ep))
	for i := range est.Ep {
		if math.IsNaN(est.Cl[i]) {
			continue
		}
		xs = append(xs, fmt.Sprintf("%.3f", est.Ep[i]))
		ys = append(ys, opts.LineData{Value: est.Cl[i]})
	}
	if len(ys) == 0 {
		return fmt.Errorf("no solved rows to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Surface estimate", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Surface estimate",
			Subtitle: fmt.Sprintf("%s/%s pc=%.1f dB pn=%.1f dB", model, approx, pcDB, pnDB),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "permittivity"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "cl (m)", Type: "log"}),
	)
	line.SetXAxis(xs)
	line.AddSeries("correlation length", ys)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}
