package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/milankovitch/internal/scene"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBlank = 0x2800

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in sub-pixels.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

// Set lights the dot at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Braille draws scene frames onto a Canvas, scaling frame pixels to dots.
// Dots are on or off: lines and pixels light up unless black, discs are
// drawn as outlines, filled rectangles only when warm coloured (the upper
// half of the insolation palette). Text is left to the stats panel.
type Braille struct {
	C      *Canvas
	sx, sy float64
}

var _ scene.Canvas = (*Braille)(nil)

func NewBraille(c *Canvas) *Braille {
	w, h := c.Dots()
	return &Braille{C: c, sx: float64(w) / scene.Width, sy: float64(h) / scene.Height}
}

func (b *Braille) dot(x, y float64) (int, int) {
	return int(math.Round(x * b.sx)), int(math.Round(y * b.sy))
}

func lit(c color.RGBA) bool { return c != scene.Black }

func warm(c color.RGBA) bool { return c.R >= 200 && c.B < 100 }

func (b *Braille) Clear(color.RGBA) { b.C.Clear() }

func (b *Braille) Pixel(x, y int, c color.RGBA) {
	if !lit(c) {
		return
	}
	b.C.Set(b.dot(float64(x), float64(y)))
}

func (b *Braille) Line(x0, y0, x1, y1, _ float64, c color.RGBA) {
	if !lit(c) {
		return
	}
	ax, ay := b.dot(x0, y0)
	bx, by := b.dot(x1, y1)
	b.C.DrawLine(ax, ay, bx, by)
}

func (b *Braille) Circle(cx, cy, r float64, c color.RGBA) {
	rx, ry := r*b.sx, r*b.sy
	px, py := cx*b.sx, cy*b.sy
	if rx < 1.5 || ry < 1.5 {
		b.C.Set(int(math.Round(px)), int(math.Round(py)))
		return
	}
	steps := max(12, int(2*math.Pi*max(rx, ry)))
	for i := 0; i < steps; i++ {
		th := 2 * math.Pi * float64(i) / float64(steps)
		b.C.Set(int(math.Round(px+rx*math.Cos(th))), int(math.Round(py+ry*math.Sin(th))))
	}
}

func (b *Braille) Rect(x, y, w, h float64, c color.RGBA) {
	if !warm(c) {
		return
	}
	x0, y0 := b.dot(x, y)
	x1, y1 := b.dot(x+w, y+h)
	for yy := y0; yy < max(y1, y0+1); yy++ {
		for xx := x0; xx < max(x1, x0+1); xx++ {
			b.C.Set(xx, yy)
		}
	}
}

func (b *Braille) Text(string, float64, float64, color.RGBA) {}
