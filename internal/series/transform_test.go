package series

import (
	"math"
	"testing"
)

func TestInterp(t *testing.T) {
	xp := []float64{0, 1000, 2000}
	fp := []float64{1, 3, 2}

	tests := []struct {
		x        float64
		expected float64
	}{
		{-5, 1},
		{0, 1},
		{500, 2},
		{1000, 3},
		{1500, 2.5},
		{2000, 2},
		{9000, 2},
	}

	for _, tt := range tests {
		got := Interp([]float64{tt.x}, xp, fp)[0]
		if math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("interp(%v): expected %v, got %v", tt.x, tt.expected, got)
		}
	}
}

func TestArange(t *testing.T) {
	got := Arange(0, 1000, 300)
	want := []float64{0, 300, 600, 900}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if n := len(Arange(0, 20_000_000, 1000)); n != 20000 {
		t.Errorf("expected 20000 samples, got %d", n)
	}
	if Arange(0, 10, 0) != nil {
		t.Error("expected nil for zero step")
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{2, 4, 6}, 340, 380)
	want := []float64{340, 360, 380}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	flat := Normalize([]float64{5, 5, 5}, 70, 90)
	for i, v := range flat {
		if v != 70 {
			t.Errorf("constant series index %d: expected 70, got %v", i, v)
		}
	}

	if len(Normalize(nil, 0, 1)) != 0 {
		t.Error("expected empty output for empty input")
	}
}

func TestConvert180To360(t *testing.T) {
	in := []float64{10, 90, 170, 120, 30, 40}
	want := []float64{10, 90, 170, 240, 330, 40}
	got := Convert180To360(in)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestPrecessionTilt(t *testing.T) {
	tests := []struct {
		name     string
		prec     float64
		ecc      float64
		expected float64
	}{
		{"zero index", 0, 0.02, 90},
		{"full positive", 0.02, 0.02, 180},
		{"full negative", -0.02, 0.02, 0},
		{"half", 0.01, 0.02, 120},
		{"clamped", 0.05, 0.02, 180},
		{"zero eccentricity", 0.01, 0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrecessionTilt([]float64{tt.prec}, []float64{tt.ecc})[0]
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
