package report

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/kyleyasumiishi/geocluster/distortion"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// Series is one named line of a chart.
type Series struct {
	Name string
	X, Y []float64
}

// DistortionSeries converts a distortion curve into a Series.
func DistortionSeries(name string, samples []distortion.Sample) Series {
	s := Series{Name: name, X: make([]float64, len(samples)), Y: make([]float64, len(samples))}
	for i, smp := range samples {
		s.X[i] = float64(smp.K)
		s.Y[i] = smp.Distortion
	}

	return s
}

// PlotDistortion writes a chart of distortion against the number of clusters.
func PlotDistortion(path, title string, series ...Series) error {
	return plotLines(path, title, "Number of clusters", "Distortion", series)
}

// PlotTiming writes a chart of running time against the number of points.
func PlotTiming(path, title string, series ...Series) error {
	return plotLines(path, title, "Number of points", "Running time (µs)", series)
}

func plotLines(path, title, xLabel, yLabel string, series []Series) error {
	if len(series) == 0 {
		return eris.New("report: no series to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return eris.Errorf("report: series %q has %d x and %d y values", s.Name, len(s.X), len(s.Y))
		}
		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j] = plotter.XY{X: s.X[j], Y: s.Y[j]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return eris.Wrapf(err, "report: series %q", s.Name)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "report: create dir for %s", path)
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return eris.Wrapf(err, "report: save %s", path)
	}

	return nil
}
