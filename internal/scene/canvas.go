package scene

import "image/color"

// Canvas is the set of primitives the scene draws with. Coordinates are
// frame pixels with the origin at the top left.
type Canvas interface {
	Clear(c color.RGBA)
	Pixel(x, y int, c color.RGBA)
	// Line draws a segment of the given thickness in pixels.
	Line(x0, y0, x1, y1, thick float64, c color.RGBA)
	// Circle draws a filled disc.
	Circle(cx, cy, r float64, c color.RGBA)
	// Rect draws a filled axis-aligned rectangle.
	Rect(x, y, w, h float64, c color.RGBA)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y float64, c color.RGBA)
}

var (
	White  = color.RGBA{255, 255, 255, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Orange = color.RGBA{255, 87, 51, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Blue   = color.RGBA{0, 0, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
)

// Frame size and rate.
const (
	Width  = 650
	Height = 650
	FPS    = 60
)
