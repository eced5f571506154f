package insolation

import (
	"math"

	"github.com/soniakeys/unit"
)

const (
	// SolarConstant in W/m².
	SolarConstant = 1367.0

	LatStep = 7.4
	LonStep = 14.8
)

// Orbit is the orbital state driving one evaluation.
type Orbit struct {
	Eccentricity float64
	Obliquity    unit.Angle
	Precession   unit.Angle
}

// NewOrbit builds an Orbit from degrees.
func NewOrbit(ecc, obliquityDeg, precessionDeg float64) Orbit {
	return Orbit{
		Eccentricity: ecc,
		Obliquity:    unit.AngleFromDeg(obliquityDeg),
		Precession:   unit.AngleFromDeg(precessionDeg),
	}
}

// HourAngle returns the sunset hour angle for latitude lat and declination dec.
func HourAngle(lat, dec unit.Angle) float64 {
	arg := lat.Tan() * dec.Tan()
	switch {
	case arg > 1:
		return math.Pi
	case arg < -1:
		return 0
	default:
		return math.Acos(-arg)
	}
}

// Daily returns daily-average insolation at latitude lat and solar
// longitude lon.
func Daily(o Orbit, lat, lon unit.Angle) float64 {
	dec := unit.Angle(o.Obliquity.Rad() * lon.Sin())
	h0 := HourAngle(lat, dec)
	dist := 1 + o.Eccentricity*(lon-o.Precession).Cos()
	return (SolarConstant / math.Pi) * dist * dist *
		(h0*lat.Sin()*dec.Sin() + lat.Cos()*dec.Cos()*math.Sin(h0))
}

// At evaluates Daily with angles in degrees.
func At(o Orbit, latDeg, lonDeg float64) float64 {
	return Daily(o, unit.AngleFromDeg(latDeg), unit.AngleFromDeg(lonDeg))
}
