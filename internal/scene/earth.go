package scene

import "github.com/soniakeys/unit"

const (
	earthRadius   = 70.0
	earthAxisHalf = 100.0
)

// Earth shows the axial tilt against a vertical reference.
type Earth struct {
	Center Point
	Tilt   unit.Angle
}

func NewEarth(obliquityDeg float64) *Earth {
	e := &Earth{Center: Point{Width * 3.0 / 4, Height/4.0 - 15}}
	e.Update(obliquityDeg)
	return e
}

func (e *Earth) Update(obliquityDeg float64) {
	e.Tilt = unit.AngleFromDeg(obliquityDeg)
}

// Axis returns the tilted rotation axis end points.
func (e *Earth) Axis() (Point, Point) {
	c := e.Center
	return Rotate(Point{c.X, c.Y - earthAxisHalf}, c, e.Tilt.Rad()),
		Rotate(Point{c.X, c.Y + earthAxisHalf}, c, e.Tilt.Rad())
}

// Equator returns the tilted equator end points.
func (e *Earth) Equator() (Point, Point) {
	c := e.Center
	return Rotate(Point{c.X - earthRadius, c.Y}, c, e.Tilt.Rad()),
		Rotate(Point{c.X + earthRadius - 1, c.Y}, c, e.Tilt.Rad())
}

func (e *Earth) Draw(cv Canvas) {
	c := e.Center
	a0, a1 := e.Axis()
	q0, q1 := e.Equator()
	cv.Line(a0.X, a0.Y, a1.X, a1.Y, 5, Red)
	cv.Line(c.X, c.Y-earthAxisHalf, c.X, c.Y+earthAxisHalf, 3, White)
	cv.Circle(c.X, c.Y, earthRadius, Blue)
	cv.Line(q0.X, q0.Y, q1.X, q1.Y, 3, White)
}
