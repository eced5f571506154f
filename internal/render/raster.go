package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Raster is a scene canvas backed by an in-memory RGBA image. Shapes are
// filled as vector paths; the rasterizer only spans the bounding box of the
// shape being drawn.
type Raster struct {
	Img  *image.RGBA
	face font.Face
	z    *vector.Rasterizer
	box  image.Rectangle
}

func NewRaster(w, h int) *Raster {
	return &Raster{
		Img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
		z:    vector.NewRasterizer(w, h),
	}
}

// begin starts a path covering [x0, x1] x [y0, y1]. It reports false when
// that box misses the image.
func (r *Raster) begin(x0, y0, x1, y1 float64) bool {
	box := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	).Intersect(r.Img.Bounds())
	if box.Empty() {
		return false
	}
	r.box = box
	r.z.Reset(box.Dx(), box.Dy())
	return true
}

// fill paints the current path in c.
func (r *Raster) fill(c color.RGBA) {
	r.z.Draw(r.Img, r.box, image.NewUniform(c), image.Point{})
}

func (r *Raster) pt(x, y float64) (float32, float32) {
	return float32(x - float64(r.box.Min.X)), float32(y - float64(r.box.Min.Y))
}

func (r *Raster) polygon(pts ...[2]float64) {
	r.z.MoveTo(r.pt(pts[0][0], pts[0][1]))
	for _, p := range pts[1:] {
		r.z.LineTo(r.pt(p[0], p[1]))
	}
	r.z.ClosePath()
}

func (r *Raster) disc(cx, cy, radius float64, c color.RGBA) {
	if !r.begin(cx-radius, cy-radius, cx+radius, cy+radius) {
		return
	}
	k := radius * kappa
	cube := func(ax, ay, bx, by, ex, ey float64) {
		x1, y1 := r.pt(ax, ay)
		x2, y2 := r.pt(bx, by)
		x3, y3 := r.pt(ex, ey)
		r.z.CubeTo(x1, y1, x2, y2, x3, y3)
	}
	r.z.MoveTo(r.pt(cx+radius, cy))
	cube(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	cube(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	cube(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	cube(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	r.z.ClosePath()
	r.fill(c)
}

func (r *Raster) Clear(c color.RGBA) {
	draw.Draw(r.Img, r.Img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) Pixel(x, y int, c color.RGBA) {
	if !(image.Point{x, y}).In(r.Img.Bounds()) {
		return
	}
	r.Img.SetRGBA(x, y, c)
}

// Line strokes a segment with round caps, so consecutive segments of a
// polyline join without notches. Hairlines (thick <= 1) run through pixel
// centres and are left uncapped.
func (r *Raster) Line(x0, y0, x1, y1, thick float64, c color.RGBA) {
	half := math.Max(thick, 1) / 2
	if thick <= 1 {
		x0, y0, x1, y1 = x0+0.5, y0+0.5, x1+0.5, y1+0.5
	}
	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	if n == 0 {
		r.disc(x0, y0, half, c)
		return
	}
	nx, ny := -dy/n*half, dx/n*half
	if !r.begin(math.Min(x0, x1)-half, math.Min(y0, y1)-half, math.Max(x0, x1)+half, math.Max(y0, y1)+half) {
		return
	}
	r.polygon(
		[2]float64{x0 + nx, y0 + ny},
		[2]float64{x1 + nx, y1 + ny},
		[2]float64{x1 - nx, y1 - ny},
		[2]float64{x0 - nx, y0 - ny},
	)
	r.fill(c)
	if thick > 1 {
		r.disc(x0, y0, half, c)
		r.disc(x1, y1, half, c)
	}
}

func (r *Raster) Circle(cx, cy, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	r.disc(cx, cy, radius, c)
}

func (r *Raster) Rect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 || !r.begin(x, y, x+w, y+h) {
		return
	}
	r.polygon([2]float64{x, y}, [2]float64{x + w, y}, [2]float64{x + w, y + h}, [2]float64{x, y + h})
	r.fill(c)
}

func (r *Raster) Text(s string, x, y float64, c color.RGBA) {
	d := &font.Drawer{
		Dst:  r.Img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(int(x), int(y)+r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
