package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/milankovitch/internal/insolation"
)

// HeatmapSVG renders an insolation grid as cells of the given size, coloured
// with the insolation palette.
func HeatmapSVG(g *insolation.Grid, cell float64) string {
	if g == nil || g.Rows() == 0 {
		return ""
	}
	levels := g.Levels(len(insolation.Palette))
	width := float64(g.Cols()) * cell
	height := float64(g.Rows()) * cell

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	for i, row := range levels {
		for j, lvl := range row {
			c := insolation.Color(lvl)
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%02x%02x%02x"><title>%.1f°, %.1f°: %.1f W/m²</title></rect>
`, float64(j)*cell, float64(i)*cell, cell, cell, c.R, c.G, c.B, g.Lats[i], g.Lons[j], g.Values[i][j]))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesSVG draws values against times as a single path scaled to fit.
func SeriesSVG(times, values []float64, width, height int, strokeColor string) string {
	n := min(len(times), len(values))
	if n < 2 {
		return ""
	}

	minX, maxX := times[0], times[0]
	minY, maxY := values[0], values[0]
	for i := 0; i < n; i++ {
		minX, maxX = min(minX, times[i]), max(maxX, times[i])
		minY, maxY = min(minY, values[i]), max(maxY, values[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := 0; i < n; i++ {
		x := (times[i] - minX) / rangeX * float64(width)
		y := float64(height) - (values[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
