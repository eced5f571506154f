package scene

import "math"

const (
	orbitSemiMajor = 100.0
	orbitSegments  = 120
	orbitStroke    = 5.0
)

// Sun sits at the focus of the orbit diagram.
type Sun struct {
	Center Point
}

func NewSun() *Sun {
	return &Sun{Center: Point{Width / 6.0, Height - 485}}
}

func (s *Sun) Draw(cv Canvas) {
	cv.Circle(s.Center.X, s.Center.Y, 15, Orange)
	cv.Circle(s.Center.X, s.Center.Y, 10, Yellow)
}

// Orbit is the ellipse traced around the Sun for an exaggerated
// eccentricity. The Sun stays at the left focus, so the centre shifts right
// by the focal distance.
type Orbit struct {
	Eccentricity float64
	A, B, C      float64
	Center       Point
}

func NewOrbit(ecc float64) *Orbit {
	o := &Orbit{}
	o.Update(ecc)
	return o
}

func (o *Orbit) Update(ecc float64) {
	o.Eccentricity = ecc
	o.A = orbitSemiMajor
	o.B = o.A * math.Sqrt(1-ecc*ecc)
	o.C = ecc * o.A
	o.Center = Point{Width/6.0 + o.C, Height - 485}
}

// Outline returns the centre line of the orbit stroke. It is inset by half
// the stroke width so the drawn border stays inside the 2A x 2B box.
func (o *Orbit) Outline() []Point {
	inset := orbitStroke / 2
	return EllipsePoints(o.Center, o.A-inset, o.B-inset, orbitSegments)
}

func (o *Orbit) Draw(cv Canvas) {
	polyline(cv, o.Outline(), orbitStroke, Red)
}
