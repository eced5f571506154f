package series

import "fmt"

const (
	MinTimestep = 100
	MaxTimestep = 5000

	// DefaultSpan covers the 20 Ma source tables.
	DefaultSpan = 20_000_000.0
	// DefaultSourceStep is the spacing of the source tables in years.
	DefaultSourceStep = 1000.0
)

// Dataset is the resampled series plus the display variants derived from it.
// Every slice has the same length and index i refers to Time[i].
type Dataset struct {
	Step float64

	Time         []float64
	Eccentricity []float64
	Precession   []float64
	Obliquity    []float64

	EccentricityNorm []float64
	EccentricityPlot []float64

	PrecessionTilt    []float64
	PrecessionDisplay []float64
	PrecessionPlot    []float64

	ObliquityNorm   []float64
	ObliquityWobble []float64
	ObliquityPlot   []float64
}

// ValidateTimestep rejects steps outside [MinTimestep, MaxTimestep].
func ValidateTimestep(step int) error {
	if step < MinTimestep || step > MaxTimestep {
		return fmt.Errorf("%w (got %d)", ErrTimestep, step)
	}
	return nil
}

// Resample interpolates every raw column onto 0, step, ... < span.
func Resample(raw *Raw, step, span float64) (t, ecc, prec, obl []float64, err error) {
	if span <= 0 || step <= 0 {
		return nil, nil, nil, nil, ErrEmptySpan
	}
	if raw.Len() < 2 {
		return nil, nil, nil, nil, ErrTooShort
	}
	t = Arange(0, span, step)
	ecc = Interp(t, raw.Time, raw.Eccentricity)
	prec = Interp(t, raw.Time, raw.Precession)
	obl = Interp(t, raw.Time, raw.Obliquity)
	return t, ecc, prec, obl, nil
}

// NewDataset resamples raw at step years over span years and derives the
// display series.
func NewDataset(raw *Raw, step int, span float64) (*Dataset, error) {
	if err := ValidateTimestep(step); err != nil {
		return nil, err
	}
	t, ecc, prec, obl, err := Resample(raw, float64(step), span)
	if err != nil {
		return nil, err
	}

	tilt := PrecessionTilt(prec, ecc)
	return &Dataset{
		Step:         float64(step),
		Time:         t,
		Eccentricity: ecc,
		Precession:   prec,
		Obliquity:    obl,

		EccentricityNorm: Normalize(ecc, 0, 0.8),
		EccentricityPlot: Normalize(ecc, 340, 380),

		PrecessionTilt:    tilt,
		PrecessionDisplay: Convert180To360(tilt),
		PrecessionPlot:    Normalize(prec, 15, 55),

		ObliquityNorm:   Normalize(obl, 5, 40),
		ObliquityWobble: Normalize(obl, 70, 90),
		ObliquityPlot:   Normalize(obl, 340, 380),
	}, nil
}

func (d *Dataset) Len() int { return len(d.Time) }

// Sample is one row of the dataset in physical units.
type Sample struct {
	Index        int
	Time         float64
	Eccentricity float64
	Precession   float64
	Obliquity    float64
	Tilt         float64
}

// At returns the physical values at index i.
func (d *Dataset) At(i int) (Sample, error) {
	if i < 0 || i >= d.Len() {
		return Sample{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, i, d.Len())
	}
	return Sample{
		Index:        i,
		Time:         d.Time[i],
		Eccentricity: d.Eccentricity[i],
		Precession:   d.Precession[i],
		Obliquity:    d.Obliquity[i],
		Tilt:         d.PrecessionTilt[i],
	}, nil
}

// Window returns up to n values of s starting at i, shorter near the end.
func Window(s []float64, i, n int) []float64 {
	if i < 0 || i >= len(s) || n <= 0 {
		return nil
	}
	end := i + n
	if end > len(s) {
		end = len(s)
	}
	return s[i:end]
}
