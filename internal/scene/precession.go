package scene

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	wobbleHalfHeight = 15.0
	wobbleEarth      = 30.0
	wobbleEquator    = 29.0
)

// Precession draws the axis sweeping around two stacked ellipses. The upper
// track is traversed along its lower half then back along its upper half;
// the lower track runs the opposite way, so a shared index puts the two ends
// of the axis on opposite sides of the small Earth.
type Precession struct {
	Center Point

	wobble  []float64
	display []float64
	lo, hi  float64

	// A is the current half width of both tracks.
	A     float64
	Upper []Point
	Lower []Point
	Pos   int
	Axis  [2]Point
	Equat [2]Point
}

// NewPrecession keeps references to the per-timestep half widths (degrees of
// tilt mapped to pixels) and the unfolded precession angle.
func NewPrecession(wobble, display []float64) *Precession {
	p := &Precession{
		Center:  Point{Width / 4.0, Height*3.0/4 - 5},
		wobble:  wobble,
		display: display,
	}
	if len(display) > 0 {
		p.lo, p.hi = floats.Min(display), floats.Max(display)
	}
	return p
}

// Tracks returns the sampled upper and lower ellipse tracks for half width a.
// Both have the same length: two entries per integer pixel column.
func Tracks(a float64) (upper, lower []Point) {
	h := Width / 4.0
	k1 := Height*3.0/4 - 90
	k2 := Height*3.0/4 + 70

	first, last := int(h-a+1), int(h+a+1)
	if last <= first {
		return nil, nil
	}
	n := last - first
	half := func(x float64) float64 {
		r := 1 - (x-h)*(x-h)/(a*a)
		return wobbleHalfHeight * math.Sqrt(math.Max(0, r))
	}

	upper = make([]Point, 0, 2*n)
	lower = make([]Point, 0, 2*n)
	for i := 0; i < n; i++ {
		x := float64(first + i)
		upper = append(upper, Point{x, half(x) + k1})
	}
	for i := n - 1; i >= 0; i-- {
		x := float64(first + i)
		upper = append(upper, Point{x, -half(x) + k1 + 3})
	}
	for i := n - 1; i >= 0; i-- {
		x := float64(first + i)
		lower = append(lower, Point{x, -half(x) + k2 + 3})
	}
	for i := 0; i < n; i++ {
		x := float64(first + i)
		lower = append(lower, Point{x, half(x) + k2})
	}
	return upper, lower
}

// trackIndex maps a precession angle onto a position along a track of
// length n. The angle range [lo, hi] covers positions 0..n, and position p
// selects entry p-1, wrapping 0 to the last entry.
func trackIndex(v, lo, hi float64, n int) int {
	if n == 0 {
		return 0
	}
	pos := 0
	if hi > lo {
		pos = int(float64(n) * (v - lo) / (hi - lo))
	}
	return ((pos-1)%n + n) % n
}

func (p *Precession) Update(i int) {
	p.A = p.wobble[i]
	p.Upper, p.Lower = Tracks(p.A)
	if len(p.Upper) == 0 {
		return
	}
	p.Pos = trackIndex(p.display[i], p.lo, p.hi, len(p.Upper))
	p.Axis = [2]Point{p.Upper[p.Pos], p.Lower[p.Pos]}
	e0, e1 := Perpendicular(p.Center, p.Axis[0], wobbleEquator)
	p.Equat = [2]Point{
		{math.Trunc(e0.X), math.Trunc(e0.Y)},
		{math.Trunc(e1.X), math.Trunc(e1.Y)},
	}
}

func drawTrack(cv Canvas, pts []Point) {
	for _, pt := range pts {
		x, y := int(pt.X), int(pt.Y)
		cv.Pixel(x, y-1, White)
		cv.Pixel(x, y, White)
		cv.Pixel(x, y+1, White)
	}
}

func (p *Precession) Draw(cv Canvas) {
	if len(p.Upper) == 0 {
		return
	}
	drawTrack(cv, p.Lower)
	cv.Line(p.Axis[0].X, p.Axis[0].Y, p.Axis[1].X, p.Axis[1].Y, 7, Red)
	drawTrack(cv, p.Upper)
	cv.Circle(p.Center.X, p.Center.Y, wobbleEarth, Blue)
	cv.Line(p.Equat[0].X, p.Equat[0].Y, p.Equat[1].X, p.Equat[1].Y, 3, White)
}
