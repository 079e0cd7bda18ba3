package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumPureSine(t *testing.T) {
	// 8 cycles over 256 samples: energy should land in bin 8
	const n = 256
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 8 * float64(i) / n)
	}

	ps := PowerSpectrum(samples)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}

	peak := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 8 {
		t.Errorf("expected peak at bin 8, got %d", peak)
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("expected nil spectrum for empty input, got %d bins", len(ps))
	}
}

func TestDominantFrequency(t *testing.T) {
	const n = 512
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 16 * float64(i) / n)
	}

	f := DominantFrequency(samples)
	want := 16.0 / n
	if math.Abs(f-want) > 1e-9 {
		t.Errorf("expected frequency %f, got %f", want, f)
	}
}

func TestDetrend(t *testing.T) {
	out := Detrend([]float64{1, 2, 3})

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if math.Abs(sum) > 1e-12 {
		t.Errorf("expected zero mean after detrend, got sum %f", sum)
	}
	if out[0] != -1 || out[1] != 0 || out[2] != 1 {
		t.Errorf("expected [-1 0 1], got %v", out)
	}
}
