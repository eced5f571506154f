package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotPNG charts values against time in Ma and saves the image to path; the
// format follows the file extension.
func PlotPNG(path, title, ylabel string, times, values []float64) error {
	n := min(len(times), len(values))
	if n == 0 {
		return fmt.Errorf("export: nothing to plot")
	}

	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = times[i] / 1e6
		pts[i].Y = values[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (Ma)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
