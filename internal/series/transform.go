package series

import (
	"math"
	"sort"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
)

// Interp evaluates the piecewise-linear function through (xp, fp) at each x.
// xp must be increasing. Points outside [xp[0], xp[n-1]] take the end values.
func Interp(x, xp, fp []float64) []float64 {
	out := make([]float64, len(x))
	n := len(xp)
	if n == 0 {
		return out
	}
	for i, v := range x {
		switch {
		case v <= xp[0]:
			out[i] = fp[0]
		case v >= xp[n-1]:
			out[i] = fp[n-1]
		default:
			j := sort.SearchFloat64s(xp, v)
			if xp[j] == v {
				out[i] = fp[j]
				continue
			}
			x0, x1 := xp[j-1], xp[j]
			w := (v - x0) / (x1 - x0)
			out[i] = fp[j-1] + w*(fp[j]-fp[j-1])
		}
	}
	return out
}

// Arange returns start, start+step, ... strictly below stop.
func Arange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Normalize maps the range of data onto [a, b]. A constant series maps to a.
func Normalize(data []float64, a, b float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}
	lo, hi := floats.Min(data), floats.Max(data)
	span := hi - lo
	for i, v := range data {
		if span == 0 {
			out[i] = a
			continue
		}
		out[i] = (b-a)*((v-lo)/span) + a
	}
	return out
}

// Convert180To360 unfolds an angle in [0, 180] into [0, 360]: a sample that
// falls below its predecessor is on the descending half and is reported as
// 360 minus itself.
func Convert180To360(deg []float64) []float64 {
	out := make([]float64, len(deg))
	prev := math.Inf(-1)
	for i, cur := range deg {
		if cur < prev {
			out[i] = 360 - cur
		} else {
			out[i] = cur
		}
		prev = cur
	}
	return out
}

// PrecessionTilt recovers the longitude of perihelion from the precession
// index e*sin(varpi), shifted to [0, 180] degrees.
func PrecessionTilt(prec, ecc []float64) []float64 {
	out := make([]float64, len(prec))
	for i := range prec {
		ratio := 0.0
		if i < len(ecc) && ecc[i] != 0 {
			ratio = prec[i] / ecc[i]
		}
		ratio = math.Max(-1, math.Min(1, ratio))
		out[i] = unit.Angle(math.Asin(ratio)).Deg() + 90
	}
	return out
}
