package insolation

import (
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
)

// Grid holds insolation for latitude bands (rows, north to south) by solar
// longitude bands (columns, -180° eastwards).
type Grid struct {
	Lats   []float64
	Lons   []float64
	Values [][]float64
}

// NewGrid allocates the 25x25 band layout.
func NewGrid() *Grid {
	lats := bands(90, -90, -LatStep)
	lons := bands(-180, 180, LonStep)
	values := make([][]float64, len(lats))
	for i := range values {
		values[i] = make([]float64, len(lons))
	}
	return &Grid{Lats: lats, Lons: lons, Values: values}
}

func bands(start, stop, step float64) []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if (step > 0 && v >= stop) || (step < 0 && v <= stop) {
			break
		}
		out = append(out, v)
	}
	return out
}

func (g *Grid) Rows() int { return len(g.Lats) }
func (g *Grid) Cols() int { return len(g.Lons) }

// Update recomputes every cell for o.
func (g *Grid) Update(o Orbit) {
	for i, lat := range g.Lats {
		phi := unit.AngleFromDeg(lat)
		row := g.Values[i]
		for j, lon := range g.Lons {
			row[j] = Daily(o, phi, unit.AngleFromDeg(lon))
		}
	}
}

// Range returns the smallest and largest cell values.
func (g *Grid) Range() (lo, hi float64) {
	if g.Rows() == 0 || g.Cols() == 0 {
		return 0, 0
	}
	lo, hi = g.Values[0][0], g.Values[0][0]
	for _, row := range g.Values {
		lo = min(lo, floats.Min(row))
		hi = max(hi, floats.Max(row))
	}
	return lo, hi
}

// Levels maps every cell onto an integer level in [0, n-1]. The minimum
// maps to 0 and the maximum to n-1; a flat grid is all zeros.
func (g *Grid) Levels(n int) [][]int {
	lo, hi := g.Range()
	span := hi - lo
	out := make([][]int, g.Rows())
	for i, row := range g.Values {
		out[i] = make([]int, len(row))
		for j, v := range row {
			if span == 0 || n <= 1 {
				continue
			}
			lvl := int(float64(n-1) * (v - lo) / span)
			out[i][j] = max(0, min(n-1, lvl))
		}
	}
	return out
}
