package series

import (
	"fmt"
	"math"
	"path/filepath"
)

// Periods (years) of the terms Synthesize superposes.
const (
	LongEccentricityPeriod  = 405_000.0
	ShortEccentricityPeriod = 95_000.0
	ObliquityPeriod         = 41_000.0
	PrecessionPeriod        = 21_000.0
)

// Synthesize builds n quasi-periodic source samples sourceStep years apart.
// The output stands in for the astronomical tables in demos and tests; it
// carries the dominant bands but none of the real solution's detail.
func Synthesize(n int, sourceStep float64) (*Raw, error) {
	if n < 2 {
		return nil, ErrTooShort
	}
	ecc := make([]float64, n)
	prec := make([]float64, n)
	obl := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) * sourceStep
		e := 0.03 +
			0.012*math.Cos(2*math.Pi*t/LongEccentricityPeriod) +
			0.01*math.Cos(2*math.Pi*t/ShortEccentricityPeriod) +
			0.006*math.Cos(2*math.Pi*t/124_000+0.7)
		varpi := 2*math.Pi*t/PrecessionPeriod + 1.3
		ecc[i] = e
		prec[i] = e * math.Sin(varpi)
		obl[i] = 23.3 +
			1.1*math.Cos(2*math.Pi*t/ObliquityPeriod) +
			0.2*math.Cos(2*math.Pi*t/53_600+1.1)
	}
	return NewRaw(ecc, prec, obl, sourceStep)
}

// WriteRaw stores raw in dir under the given file names.
func WriteRaw(dir string, files Files, raw *Raw) error {
	cols := []struct {
		name   string
		values []float64
	}{
		{files.Eccentricity, raw.Eccentricity},
		{files.Precession, raw.Precession},
		{files.Obliquity, raw.Obliquity},
	}
	for _, c := range cols {
		if err := WriteColumn(filepath.Join(dir, c.name), c.values); err != nil {
			return fmt.Errorf("write %s: %w", c.name, err)
		}
	}
	return nil
}
