package scene

import "github.com/san-kum/milankovitch/internal/insolation"

const heatCell = 10.0

// Heatmap renders the insolation grid: columns are solar longitude, rows
// latitude from 90N down.
type Heatmap struct {
	Origin Point
	Grid   *insolation.Grid
	Levels [][]int
}

func NewHeatmap() *Heatmap {
	return &Heatmap{
		Origin: Point{Width/2.0 + 50, Height/2.0 + 37},
		Grid:   insolation.NewGrid(),
	}
}

func (h *Heatmap) Update(o insolation.Orbit) {
	h.Grid.Update(o)
	h.Levels = h.Grid.Levels(len(insolation.Palette))
}

func (h *Heatmap) Draw(cv Canvas) {
	for i, row := range h.Levels {
		for j, lvl := range row {
			x := h.Origin.X + float64(j)*heatCell
			y := h.Origin.Y + float64(i)*heatCell
			cv.Rect(x, y, heatCell, heatCell, insolation.Color(lvl))
		}
	}
}
