package scene

import (
	"fmt"

	"github.com/san-kum/milankovitch/internal/series"
)

// StripWindow is the number of samples a strip plot shows.
const StripWindow = 275

// Strip scrolls a pixel-space series past a fixed marker at X0.
type Strip struct {
	X0     float64
	Values []float64
}

func (s *Strip) Draw(cv Canvas, i int) {
	w := series.Window(s.Values, i, StripWindow)
	if len(w) == 0 {
		return
	}
	for k, v := range w {
		cv.Pixel(int(s.X0)+k, int(Height-v), White)
	}
	cv.Circle(s.X0, float64(int(Height-w[0])), 10, Red)
}

// Label is fixed text at a frame position.
type Label struct {
	Text string
	X, Y float64
}

// Labels around the heatmap.
var heatmapLabels = []Label{
	{"90N", 335, 365},
	{"90S", 335, 588},
	{" EQ", 335, 475},
	{"SEP", 370, 615},
	{"JAN", 444, 615},
	{"MAY", 518, 615},
	{"SEP", 592, 615},
	{"Solar Radiation (W/m^2)", 400, 335},
}

// Overlay holds the readouts for the current timestep.
type Overlay struct {
	Sample series.Sample
}

func (o *Overlay) Update(s series.Sample) { o.Sample = s }

// Readouts returns the value labels for the current sample.
func (o *Overlay) Readouts() []Label {
	s := o.Sample
	return []Label{
		{"Eccentricity: " + fmt.Sprintf("%.3f", s.Eccentricity), 10, 10},
		{"Time: " + FormatMa(s.Time) + " Ma", 10, 35},
		{"Precession: " + FormatPrecession(s.Tilt), 10, 335},
		{"Obliquity: " + fmt.Sprintf("%.2f", s.Obliquity), 335, 10},
	}
}

// FormatMa renders years as millions with three decimals.
func FormatMa(years float64) string {
	return fmt.Sprintf("%.3f", years/1e6)
}

// FormatPrecession pads positive angles so the column lines up with signed
// values.
func FormatPrecession(deg float64) string {
	s := fmt.Sprintf("%.3f", deg)
	if deg > 0 {
		s = " " + s
	}
	return s
}

func (o *Overlay) Draw(cv Canvas) {
	for _, l := range o.Readouts() {
		cv.Text(l.Text, l.X, l.Y, White)
	}
	for _, l := range heatmapLabels {
		cv.Text(l.Text, l.X, l.Y, White)
	}
}

func drawQuadrants(cv Canvas) {
	cv.Line(Width/2.0, 0, Width/2.0, Height, 1, White)
	cv.Line(0, Height/2.0, Width, Height/2.0, 1, White)
}
