package scene

import (
	"image/color"
	"math"
)

// Point is a position in frame pixels.
type Point struct{ X, Y float64 }

// Rotate turns p about c by angle radians (clockwise on screen, since y
// grows downwards).
func Rotate(p, c Point, angle float64) Point {
	s, co := math.Sincos(angle)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{
		X: co*dx - s*dy + c.X,
		Y: s*dx + co*dy + c.Y,
	}
}

// EllipsePoints samples n+1 points around an axis-aligned ellipse, closing
// the loop.
func EllipsePoints(c Point, rx, ry float64, n int) []Point {
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{c.X + rx*math.Cos(th), c.Y + ry*math.Sin(th)}
	}
	return pts
}

// Perpendicular returns the two points at distance d either side of c,
// along the direction perpendicular to the segment c-p. A degenerate segment
// yields a horizontal pair.
func Perpendicular(c, p Point, d float64) (Point, Point) {
	dx, dy := p.X-c.X, p.Y-c.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return Point{c.X - d, c.Y}, Point{c.X + d, c.Y}
	}
	ux, uy := -dy/n, dx/n
	return Point{c.X + d*ux, c.Y + d*uy}, Point{c.X - d*ux, c.Y - d*uy}
}

func polyline(cv Canvas, pts []Point, thick float64, c color.RGBA) {
	for i := 1; i < len(pts); i++ {
		cv.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, thick, c)
	}
}
