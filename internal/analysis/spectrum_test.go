package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/milankovitch/internal/series"
)

func TestPowerSpectrumSine(t *testing.T) {
	n := 256
	data := make([]float64, n)
	for i := range data {
		data[i] = 5 + math.Sin(2*math.Pi*8*float64(i)/float64(n))
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}
	if ps[0] > 1e-9 {
		t.Errorf("mean should be removed, dc bin = %v", ps[0])
	}

	maxIdx := 0
	for i := range ps {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx != 8 {
		t.Errorf("expected peak at bin 8, got %d", maxIdx)
	}
}

func TestPowerSpectrumPads(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 100))
	if len(ps) != 64 {
		t.Errorf("expected padding to 128 samples, got %d bins", len(ps))
	}
	if PowerSpectrum(nil) != nil {
		t.Error("expected nil for empty input")
	}
}

func TestPeaksFindObliquityBand(t *testing.T) {
	raw, err := series.Synthesize(4097, series.DefaultSourceStep)
	if err != nil {
		t.Fatal(err)
	}
	ds, err := series.NewDataset(raw, 1000, raw.Span())
	if err != nil {
		t.Fatal(err)
	}

	peaks := Peaks(ds.Obliquity, ds.Step, 1, 10_000, 200_000)
	if len(peaks) != 1 {
		t.Fatalf("expected one peak, got %d", len(peaks))
	}
	if math.Abs(peaks[0].Period-series.ObliquityPeriod) > 2_000 {
		t.Errorf("expected a peak near 41 kyr, got %.0f", peaks[0].Period)
	}
}
