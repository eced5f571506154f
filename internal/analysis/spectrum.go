package analysis

import (
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns the magnitude of the first half of the FFT of data
// after removing its mean and zero-padding to a power of two.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	n := 1
	for n < len(data) {
		n *= 2
	}
	mean := stat.Mean(data, nil)
	padded := make([]float64, n)
	for i, v := range data {
		padded[i] = v - mean
	}

	coeffs := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// Peak is one spectral line.
type Peak struct {
	Period float64 // years
	Power  float64
}

// Peaks returns up to k local maxima of the spectrum of data, sampled every
// step years, whose periods fall in [minPeriod, maxPeriod], strongest first.
func Peaks(data []float64, step float64, k int, minPeriod, maxPeriod float64) []Peak {
	ps := PowerSpectrum(data)
	if len(ps) < 3 || step <= 0 {
		return nil
	}
	total := float64(2*len(ps)) * step

	var peaks []Peak
	for i := 1; i < len(ps)-1; i++ {
		if ps[i] <= ps[i-1] || ps[i] < ps[i+1] {
			continue
		}
		period := total / float64(i)
		if period < minPeriod || period > maxPeriod {
			continue
		}
		peaks = append(peaks, Peak{Period: period, Power: ps[i]})
	}
	sort.Slice(peaks, func(a, b int) bool { return peaks[a].Power > peaks[b].Power })
	if len(peaks) > k {
		peaks = peaks[:k]
	}
	return peaks
}
